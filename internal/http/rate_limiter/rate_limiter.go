package rate_limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*clientLimiter)
	mu       sync.Mutex
)

// GetVisitor returns the limiter for the given client address, creating one
// on first sight. Browsing actions are cheap, so the bucket is generous:
// 10 requests/sec with a burst of 20.
func GetVisitor(ip string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(10, 20)
		visitors[ip] = &clientLimiter{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// StartVisitorCleanupLoop drops limiters for clients idle longer than five
// minutes. Intended to run in its own goroutine.
func StartVisitorCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		mu.Lock()
		for ip, v := range visitors {
			if time.Since(v.lastSeen) > 5*time.Minute {
				delete(visitors, ip)
			}
		}
		mu.Unlock()
	}
}

// CleanupAllVisitors resets the visitor map.
func CleanupAllVisitors() {
	mu.Lock()
	defer mu.Unlock()
	visitors = make(map[string]*clientLimiter)
}
