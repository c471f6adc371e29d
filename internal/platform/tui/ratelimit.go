package tui

import (
	"net"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// SessionLimiter throttles new SSH sessions per remote host.
type SessionLimiter struct {
	perSecond rate.Limit
	burst     int

	mu      sync.RWMutex
	clients map[string]*rate.Limiter
}

// NewSessionLimiter allows burst sessions at once per host, refilled at
// perMinute sessions per minute.
func NewSessionLimiter(perMinute float64, burst int) *SessionLimiter {
	return &SessionLimiter{
		perSecond: rate.Limit(perMinute / 60),
		burst:     burst,
		clients:   make(map[string]*rate.Limiter),
	}
}

func (l *SessionLimiter) limiter(host string) *rate.Limiter {
	l.mu.RLock()
	lim, ok := l.clients[host]
	l.mu.RUnlock()
	if ok {
		return lim
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if lim, ok = l.clients[host]; !ok {
		lim = rate.NewLimiter(l.perSecond, l.burst)
		l.clients[host] = lim
	}
	return lim
}

// Allow reports whether a new session from addr may start now.
func (l *SessionLimiter) Allow(addr net.Addr) bool {
	return l.AllowAt(hostOf(addr), time.Now())
}

// AllowAt is Allow for a bare host at a given instant.
func (l *SessionLimiter) AllowAt(host string, now time.Time) bool {
	return l.limiter(host).AllowN(now, 1)
}

// Prune forgets hosts whose bucket has refilled completely.
func (l *SessionLimiter) Prune(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for host, lim := range l.clients {
		if lim.TokensAt(now) >= float64(l.burst) {
			delete(l.clients, host)
		}
	}
}

// Len returns the number of tracked hosts.
func (l *SessionLimiter) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.clients)
}

// pruneEvery runs Prune on a ticker until stop is closed.
func (l *SessionLimiter) pruneEvery(d time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(d)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			l.Prune(now)
		case <-stop:
			return
		}
	}
}

func hostOf(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
