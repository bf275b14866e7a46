// Package jobs provides the scheduled reaper sweeps of the order service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-resolution specs:
//
//  1. UnpaidOrderSweepJob cancels orders that waited for payment too long
//     (default "@every 1m", timeout 15m).
//  2. StuckDeliverySweepJob force-completes deliveries that never got closed
//     (default "0 0 2 * * *", timeout 120m).
//
// # Usage
//
//	jobManager := jobs.NewJobManager(jobs.Schedule{...}, unpaidHandler, stuckHandler, clock, m, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Overlap
//
// Every job runs behind cron.SkipIfStillRunning: a run that is still busy when
// the next tick fires makes the scheduler skip that tick, so two sweeps of the
// same kind never run concurrently. The two kinds use separate schedulers and
// share no state.
package jobs
