package webserver

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/OneOfOne/xxhash"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	agentic "github.com/signalworks/intent-engine/src/agentic/processor"
	atypes "github.com/signalworks/intent-engine/src/agentic/types"
	"github.com/signalworks/intent-engine/src/api/data"
	"github.com/signalworks/intent-engine/src/api/types"
	"github.com/signalworks/intent-engine/src/notify"
)

const maxBatchSize = 500

// Collector defaults applied at the ingest boundary when a field is absent.
const (
	defaultSignalStrength  = 5
	defaultConfidenceLevel = 0.5
)

type Signals struct {
	db        *gorm.DB
	rdb       *redis.Client
	processor *agentic.Processor
	notifier  *notify.Notifier
	sanitizer *bluemonday.Policy
}

func NewSignals(db *gorm.DB, rdb *redis.Client, proc *agentic.Processor, notifier *notify.Notifier) Signals {
	return Signals{
		db:        db,
		rdb:       rdb,
		processor: proc,
		notifier:  notifier,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Ingest accepts a batch of raw signals, runs the full enrichment pipeline
// and persists the results. Every input yields exactly one output.
func (h Signals) Ingest(c *gin.Context) {
	var req struct {
		Signals []atypes.Signal `json:"signals" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	if len(req.Signals) == 0 || len(req.Signals) > maxBatchSize {
		c.JSON(http.StatusBadRequest, gin.H{"err": fmt.Sprintf("batch size must be 1-%d", maxBatchSize)})
		return
	}

	for i := range req.Signals {
		sig := &req.Signals[i]
		sig.Description = h.sanitizer.Sanitize(sig.Description)
		sig.ContentSnippet = h.sanitizer.Sanitize(sig.ContentSnippet)
		if sig.ID == "" {
			sig.ID = uuid.NewString()
		}
		if sig.SignalStrength == 0 {
			sig.SignalStrength = defaultSignalStrength
		}
		if sig.ConfidenceLevel == 0 {
			sig.ConfidenceLevel = defaultConfidenceLevel
		}
	}

	processed := h.processor.Process(c.Request.Context(), req.Signals)

	stored := 0
	duplicates := 0
	for i := range processed {
		sig := &processed[i]
		rec := types.FromSignal(sig, fingerprint(sig))

		res := h.db.Where("fingerprint = ?", rec.Fingerprint).FirstOrCreate(&rec)
		if res.Error != nil {
			log.Printf("signals: store %s: %v", sig.ID, res.Error)
			continue
		}
		if res.RowsAffected == 0 {
			duplicates++
			continue
		}
		stored++

		for _, dec := range sig.AutonomousDecisions {
			if err := data.PublishDecision(c.Request.Context(), h.rdb, sig.ID, sig.CompanyName, dec); err != nil {
				log.Printf("signals: publish decision for %s: %v", sig.ID, err)
			}
		}
	}

	go h.notifier.NotifyImmediate(processed)

	c.JSON(http.StatusOK, gin.H{
		"signals":    processed,
		"stored":     stored,
		"duplicates": duplicates,
	})
}

// List returns persisted signals ordered by priority, optionally filtered.
func (h Signals) List(c *gin.Context) {
	q := h.db.Model(&types.SignalRecord{}).Order("ai_priority_score DESC")

	if v := c.Query("min_priority"); v != "" {
		minPriority, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"err": "bad min_priority"})
			return
		}
		q = q.Where("ai_priority_score >= ?", minPriority)
	}
	if v := c.Query("company"); v != "" {
		q = q.Where("company_name = ?", v)
	}
	limit := 100
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 1000 {
			limit = n
		}
	}

	var records []types.SignalRecord
	if err := q.Limit(limit).Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": "database error"})
		return
	}

	signals := make([]atypes.Signal, 0, len(records))
	for i := range records {
		signals = append(signals, records[i].ToSignal())
	}
	c.JSON(http.StatusOK, gin.H{"signals": signals})
}

func (h Signals) Get(c *gin.Context) {
	var rec types.SignalRecord
	if err := h.db.Where("id = ?", c.Param("id")).First(&rec).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"err": "signal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"err": "database error"})
		return
	}
	c.JSON(http.StatusOK, rec.ToSignal())
}

func fingerprint(s *atypes.Signal) string {
	h := xxhash.New64()
	_, _ = h.WriteString(s.CompanyName)
	_, _ = h.WriteString("|")
	_, _ = h.WriteString(s.Description)
	_, _ = h.WriteString("|")
	_, _ = h.WriteString(s.ContentSnippet)
	return fmt.Sprintf("%016x", h.Sum64())
}
