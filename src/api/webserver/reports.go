package webserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/signalworks/intent-engine/src/agentic/report"
	atypes "github.com/signalworks/intent-engine/src/agentic/types"
	"github.com/signalworks/intent-engine/src/api/data"
	"github.com/signalworks/intent-engine/src/api/types"
	"github.com/signalworks/intent-engine/src/export"
)

const reportWindow = 1000 // most recent signals feeding the report

type Reports struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewReports(db *gorm.DB, rdb *redis.Client) Reports {
	return Reports{db: db, rdb: rdb}
}

// Report serves the aggregated insight summary, cached in Redis between
// requests.
func (h Reports) Report(c *gin.Context) {
	if cached, err := data.CachedReport(c.Request.Context(), h.rdb); err == nil && len(cached) > 0 {
		c.Data(http.StatusOK, "application/json", cached)
		return
	}

	signals, err := h.recentSignals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": "database error"})
		return
	}

	summary := report.Generate(signals)
	if err := data.CacheReport(c.Request.Context(), h.rdb, summary); err != nil {
		log.Printf("reports: cache: %v", err)
	}
	c.JSON(http.StatusOK, summary)
}

// Export streams the enriched signals as a flattened CSV.
func (h Reports) Export(c *gin.Context) {
	signals, err := h.recentSignals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": "database error"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="ai_enhanced_intent_signals.csv"`)
	if err := export.WriteCSV(c.Writer, signals); err != nil {
		log.Printf("reports: export: %v", err)
	}
}

func (h Reports) recentSignals() ([]atypes.Signal, error) {
	var records []types.SignalRecord
	err := h.db.Order("created_at DESC").Limit(reportWindow).Find(&records).Error
	if err != nil {
		return nil, err
	}
	signals := make([]atypes.Signal, 0, len(records))
	for i := range records {
		signals = append(signals, records[i].ToSignal())
	}
	return signals, nil
}
