package jobs

import (
	"log"

	"github.com/virtuixrw/backend/services"
)

// ProcessScheduledPayouts is the cron entry point for the payout engine. It
// sweeps every due, unexecuted payout and credits it exactly once.
func ProcessScheduledPayouts() {
	processed, err := services.ProcessDuePayouts()
	if err != nil {
		log.Printf("🔥 Payout sweep failed: %v", err)
		return
	}
	if processed > 0 {
		log.Printf("✅ Payout sweep executed %d payout(s)", processed)
	}
}
