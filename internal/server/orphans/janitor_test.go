package orphans

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/userdir/internal/logging"
	"github.com/dmitrijs2005/userdir/internal/server/models"
)

type fakeLister struct {
	ps  []models.Profile
	err error
}

func (f *fakeLister) ListOrphans(context.Context) ([]models.Profile, error) { return f.ps, f.err }

type fakeUploader struct {
	mu   sync.Mutex
	keys []string
	body []byte
	err  error
}

func (f *fakeUploader) Upload(_ context.Context, key string, body []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	f.body = body
	return nil
}

func (f *fakeUploader) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.keys)
}

type fakeObserver struct {
	found []int
	errs  []error
}

func (f *fakeObserver) ObserveOrphanScan(found int, err error) {
	f.found = append(f.found, found)
	f.errs = append(f.errs, err)
}

var keyRe = regexp.MustCompile(`^orphans/2024/06/01/[0-9a-f-]{36}\.json$`)

func TestReportKey(t *testing.T) {
	at := time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC)
	assert.Regexp(t, keyRe, ReportKey(at))
	assert.NotEqual(t, ReportKey(at), ReportKey(at))
}

func TestScan_UploadsReport(t *testing.T) {
	l := &fakeLister{ps: []models.Profile{{UID: "ghost", UserName: "neo", Status: "active"}}}
	u := &fakeUploader{}
	o := &fakeObserver{}
	j := NewJanitor(l, u, o, time.Hour, logging.Discard())
	j.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

	key, err := j.Scan(context.Background())
	require.NoError(t, err)
	assert.Regexp(t, keyRe, key)

	var r Report
	require.NoError(t, json.Unmarshal(u.body, &r))
	assert.Equal(t, 1, r.Count)
	assert.Equal(t, "ghost", r.Profiles[0].UID)
	assert.Equal(t, []int{1}, o.found)
	assert.Nil(t, o.errs[0])
}

func TestScan_NothingToReport(t *testing.T) {
	u := &fakeUploader{}
	o := &fakeObserver{}
	j := NewJanitor(&fakeLister{}, u, o, time.Hour, logging.Discard())

	key, err := j.Scan(context.Background())
	require.NoError(t, err)
	assert.Empty(t, key)
	assert.Zero(t, u.count())
	assert.Equal(t, []int{0}, o.found)
}

func TestScan_Errors(t *testing.T) {
	boom := errors.New("boom")

	o := &fakeObserver{}
	j := NewJanitor(&fakeLister{err: boom}, &fakeUploader{}, o, time.Hour, logging.Discard())
	_, err := j.Scan(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, o.errs[0], boom)

	j = NewJanitor(&fakeLister{ps: []models.Profile{{UID: "x"}}}, &fakeUploader{err: boom}, nil, time.Hour, logging.Discard())
	_, err = j.Scan(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestRun_ScansUntilCancelled(t *testing.T) {
	u := &fakeUploader{}
	j := NewJanitor(&fakeLister{ps: []models.Profile{{UID: "x"}}}, u, nil, 10*time.Millisecond, logging.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- j.Run(ctx) }()

	require.Eventually(t, func() bool { return u.count() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_Disabled(t *testing.T) {
	u := &fakeUploader{}
	j := NewJanitor(&fakeLister{ps: []models.Profile{{UID: "x"}}}, u, nil, 0, logging.Discard())
	require.NoError(t, j.Run(context.Background()))
	assert.Zero(t, u.count())
}
