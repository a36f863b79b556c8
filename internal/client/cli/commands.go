package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/userdir/internal/client/client"
	"github.com/dmitrijs2005/userdir/internal/client/directory"
	"github.com/dmitrijs2005/userdir/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// report prints err in the form the user should see it.
func (a *App) report(err error) {
	var (
		ce   *directory.CredentialError
		bulk *directory.BulkError
	)
	switch {
	case errors.As(err, &ce):
		fmt.Fprintln(a.out, ce.Message)
	case errors.As(err, &bulk):
		fmt.Fprintln(a.out, bulk.Error())
	case errors.Is(err, directory.ErrInvalidInput):
		fmt.Fprintln(a.out, err.Error())
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, "Server unavailable, try again later")
	case errors.Is(err, client.ErrUnauthorized):
		fmt.Fprintln(a.out, "Session expired, please sign in again")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
}

func (a *App) readPassword() (string, error) {
	pw, err := getPassword(a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// SignUp prompts for a user name, email and password and creates the
// account together with its profile.
func (a *App) SignUp(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := a.readPassword()
	if err != nil {
		return err
	}

	if err := a.session.SignUp(ctx, userName, email, password); err != nil {
		a.report(err)
		return err
	}
	fmt.Fprintln(a.out, "Account created")
	return nil
}

func (a *App) SignIn(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := a.readPassword()
	if err != nil {
		return err
	}

	if err := a.session.SignIn(ctx, email, password); err != nil {
		a.report(err)
		return err
	}
	fmt.Fprintln(a.out, "Signed in")
	return nil
}

func (a *App) SignOut(ctx context.Context) error {
	if err := a.session.SignOut(ctx); err != nil {
		a.report(err)
		return err
	}
	a.resetState()
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

// DeleteAccount asks for confirmation, then removes the credential and the
// profile.
func (a *App) DeleteAccount(ctx context.Context) error {
	ok, err := Confirm(a.reader, "Delete your account permanently?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.session.DeleteAccount(ctx); err != nil {
		a.report(err)
		return err
	}
	a.resetState()
	fmt.Fprintln(a.out, "Account deleted")
	return nil
}

func (a *App) resetState() {
	a.mu.Lock()
	a.lastState = directory.Anonymous
	a.mu.Unlock()
}

// List prints the mirror as a table. Rows are numbered for select, selected
// rows are marked with [x] and the session's own row with *.
func (a *App) List(ctx context.Context) error {
	mirror := a.session.Mirror()
	if len(mirror) == 0 {
		fmt.Fprintln(a.out, "Directory is empty")
		return nil
	}

	mod := a.session.Moderation()
	own := ""
	if v := a.session.View(); v.Identity != nil {
		own = v.Identity.UID
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSEL\tUID\tNAME\tEMAIL\tSTATUS\tREGISTERED\tLAST SIGN-IN")
	for i, p := range mirror.Sorted() {
		sel := "[ ]"
		if mod.IsSelected(p.UID) {
			sel = "[x]"
		}
		uid := p.UID
		if uid == own {
			uid += " *"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, sel, uid, p.UserName, p.UserEmail, p.Status, dash(p.RegistrationTime), dash(p.LastSignInTime))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if mod.SelectAllActive() {
		fmt.Fprintln(a.out, "(all selected)")
	}
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Select toggles the selection of every listed row. A row is named by its
// number in the last list output or by uid.
func (a *App) Select(ctx context.Context, refs []string) error {
	mirror := a.session.Mirror()
	rows := mirror.Sorted()
	mod := a.session.Moderation()

	var unknown []string
	for _, ref := range refs {
		uid, ok := resolveRow(mirror, rows, ref)
		if !ok {
			unknown = append(unknown, ref)
			continue
		}
		mod.ToggleOne(uid)
	}
	if len(unknown) > 0 {
		fmt.Fprintln(a.out, "Unknown row:", strings.Join(unknown, ", "))
	}
	fmt.Fprintf(a.out, "%d selected\n", len(mod.Selected()))
	return nil
}

func resolveRow(mirror directory.Mirror, rows []directory.UserProfile, ref string) (string, bool) {
	if _, ok := mirror.Lookup(ref); ok {
		return ref, true
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(rows) {
		return rows[n-1].UID, true
	}
	return "", false
}

func (a *App) SelectAll(ctx context.Context) error {
	mod := a.session.Moderation()
	mod.ToggleSelectAll(a.session.Mirror())
	fmt.Fprintf(a.out, "%d selected\n", len(mod.Selected()))
	return nil
}

// SetStatus applies target to the current selection.
func (a *App) SetStatus(ctx context.Context, target directory.Status) error {
	if len(a.session.Moderation().Selected()) == 0 {
		fmt.Fprintln(a.out, "Nothing selected")
		return nil
	}

	updated, err := a.session.ApplyBulkStatus(ctx, target)
	fmt.Fprintf(a.out, "%d profile(s) set to %s\n", len(updated), target)
	if err != nil {
		a.report(err)
		return err
	}
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	v := a.session.View()
	if v.Identity == nil {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}
	fmt.Fprintf(a.out, "uid: %s\nemail: %s\nstate: %s\n", v.Identity.UID, v.Identity.Email, v.State)
	if v.State != directory.Anonymous {
		fmt.Fprintf(a.out, "name: %s\nregistered: %s\nlast sign-in: %s\n",
			v.Own.UserName, dash(v.Own.RegistrationTime), dash(v.Own.LastSignInTime))
	}
	return nil
}
