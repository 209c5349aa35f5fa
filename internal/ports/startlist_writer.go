package ports

import "github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/domain"

// StartlistWriter renders a combined startlist into the output files consumed
// by Mulka and the event staff. Byte layout is the writer's concern; the core
// only guarantees field completeness.
type StartlistWriter interface {
	WriteStartlistCSV(startlist []domain.StartlistEntry, path string) error
	WriteRoleStartlistCSV(startlist []domain.StartlistEntry, path string) error
	WriteClassSummaryCSV(startlist []domain.StartlistEntry, path string) error
	WritePublicStartlistTeX(startlist []domain.StartlistEntry, path string, cfg domain.EventConfig) error
	WriteRoleStartlistTeX(startlist []domain.StartlistEntry, path string, cfg domain.EventConfig) error
}
