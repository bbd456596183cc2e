package jobs

import (
	"fmt"
	"log"

	"github.com/enrollify/enrollment-api/services"
)

// EnrollmentDigest writes a daily summary of enrollment activity into the
// audit log so administrators see movement without opening the dashboard.
type EnrollmentDigest struct {
	Stats *services.StatsService
	Audit *services.AuditService
}

func NewEnrollmentDigest(stats *services.StatsService, audit *services.AuditService) *EnrollmentDigest {
	return &EnrollmentDigest{Stats: stats, Audit: audit}
}

func (j *EnrollmentDigest) Run() {
	recent, err := j.Stats.RecentEnrollments(7)
	if err != nil {
		log.Printf("🔥 Enrollment digest failed: %v", err)
		return
	}
	overview, err := j.Stats.Overview()
	if err != nil {
		log.Printf("🔥 Enrollment digest failed: %v", err)
		return
	}

	j.Audit.Log(nil, "ENROLLMENT_DIGEST",
		fmt.Sprintf("New enrollees last 7 days: %d, pending: %d, enrolled: %d",
			recent, overview.Pending, overview.Enrolled))
}
