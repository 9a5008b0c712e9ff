package refreshrunner_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap"

	"tradelens/internal/adapters/memory"
	"tradelens/internal/domain"
	"tradelens/internal/metrics"
	"tradelens/internal/workers/refreshrunner"
)

type recorder struct {
	mu   sync.Mutex
	jobs []domain.RefreshJob
	fail map[string]bool
}

func (r *recorder) Refresh(_ context.Context, job domain.RefreshJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, job)
	if r.fail[job.Key.CompanyName] {
		return errors.New("provider down")
	}
	return nil
}

func job(key, locator string) domain.RefreshJob {
	return domain.RefreshJob{Key: domain.CacheKey{CompanyName: key, Locator: locator}, CompanyName: key + " Inc"}
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.jobs)
}

func TestRunner(t *testing.T) {
	Convey("Given queued refresh jobs", t, func() {
		ctx := context.Background()
		store := memory.New()
		So(store.EnqueueRefresh(ctx, job("ACME", "90045")), ShouldBeNil)
		So(store.EnqueueRefresh(ctx, job("GLOBEX", "globex.com")), ShouldBeNil)
		So(store.EnqueueRefresh(ctx, job("ACME", "90045")), ShouldBeNil)
		So(store.PendingRefreshes(), ShouldEqual, 2)

		rec := &recorder{fail: map[string]bool{"GLOBEX": true}}
		runner := refreshrunner.New(store, rec, metrics.New(), zap.NewNop(), 2, 10*time.Millisecond, time.Second)

		Convey("Drain handles every job once and settles failures", func() {
			n, err := runner.Drain(ctx)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 2)
			So(rec.count(), ShouldEqual, 2)
			So(store.PendingRefreshes(), ShouldEqual, 0)
			So(rec.jobs[0].CompanyName, ShouldEqual, "ACME Inc")

			Convey("A failed key can be queued again", func() {
				So(store.EnqueueRefresh(ctx, job("GLOBEX", "globex.com")), ShouldBeNil)
				So(store.PendingRefreshes(), ShouldEqual, 1)
			})
		})

		Convey("Run works the queue until cancelled", func() {
			runCtx, cancel := context.WithCancel(ctx)
			done := make(chan struct{})
			go func() {
				runner.Run(runCtx)
				close(done)
			}()

			deadline := time.Now().Add(2 * time.Second)
			for store.PendingRefreshes() > 0 && time.Now().Before(deadline) {
				time.Sleep(5 * time.Millisecond)
			}
			cancel()
			<-done
			So(store.PendingRefreshes(), ShouldEqual, 0)
			So(rec.count(), ShouldEqual, 2)
		})
	})
}
