package drafts

import (
	"mado-service/internal/app/contracts"
	"mado-service/internal/pkg/constvars"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionRegistry keeps one DraftsPage per browser session.
type SessionRegistry struct {
	client      contracts.MadoClient
	approverID  string
	idleTimeout time.Duration
	log         *zap.Logger
	now         func() time.Time

	mu    sync.Mutex
	pages map[string]*DraftsPage
}

func NewSessionRegistry(client contracts.MadoClient, approverID string, idleTimeout time.Duration, logger *zap.Logger) *SessionRegistry {
	return &SessionRegistry{
		client:      client,
		approverID:  approverID,
		idleTimeout: idleTimeout,
		log:         logger,
		now:         time.Now,
		pages:       make(map[string]*DraftsPage),
	}
}

// Page returns the session's page, creating it on first use.
func (r *SessionRegistry) Page(sessionID string) *DraftsPage {
	now := r.now()

	r.mu.Lock()
	page, ok := r.pages[sessionID]
	if !ok {
		page = NewDraftsPage(r.client, r.approverID, r.log)
		page.now = r.now
		r.pages[sessionID] = page
		r.log.Info("SessionRegistry.Page created page",
			zap.String(constvars.LoggingSessionIDKey, sessionID),
		)
	}
	r.mu.Unlock()

	page.touch(now)
	return page
}

// Len reports the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pages)
}

// EvictIdle drops pages untouched for longer than the idle timeout and returns how many went.
func (r *SessionRegistry) EvictIdle() int {
	if r.idleTimeout <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.idleTimeout)

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for sessionID, page := range r.pages {
		if page.idleSince().Before(cutoff) {
			delete(r.pages, sessionID)
			evicted++
		}
	}
	return evicted
}

// StartJanitor schedules EvictIdle on cronSpec and returns a func that stops
// the schedule and waits for a running sweep. An invalid spec falls back to
// every minute.
func (r *SessionRegistry) StartJanitor(cronSpec string) func() {
	sweep := func() {
		if evicted := r.EvictIdle(); evicted > 0 {
			r.log.Info("SessionRegistry janitor evicted idle sessions",
				zap.Int(constvars.LoggingEvictedKey, evicted),
				zap.Int(constvars.LoggingRemainingKey, r.Len()),
			)
		}
	}

	c := cron.New()
	_, err := c.AddFunc(cronSpec, sweep)
	if err != nil {
		r.log.Warn("SessionRegistry janitor invalid cron spec, falling back to default",
			zap.String(constvars.LoggingCronSpecKey, cronSpec),
			zap.String(constvars.LoggingFallbackKey, constvars.DefaultSessionJanitorCronSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(constvars.DefaultSessionJanitorCronSpec, sweep)
	}
	c.Start()

	return func() {
		<-c.Stop().Done()
	}
}
