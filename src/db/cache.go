package db

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"
)

// Evaluating a health report walks every record table, so finished reports are
// cached per (user, window). Keys are tracked in a registry so a record write
// can drop exactly the owner's reports. The short TTL covers the day rollover
// of the evaluation window.
const reportCacheTTL = 5 * time.Minute

var (
	Cache           *ristretto.Cache
	ReportCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func ReportCacheKey(userID, days int) string {
	return fmt.Sprintf("report:%d:%d", userID, days)
}

func SetReportCache(cacheKey string, value interface{}) {
	ReportCacheKeys.Lock()
	ReportCacheKeys.m[cacheKey] = struct{}{}
	ReportCacheKeys.Unlock()
	Cache.SetWithTTL(cacheKey, value, 1, reportCacheTTL)
}

// ClearUserReportCaches drops every cached report window for one user. Called
// on any income/expense/asset/liability write.
func ClearUserReportCaches(userID int) {
	prefix := fmt.Sprintf("report:%d:", userID)
	ReportCacheKeys.Lock()
	for key := range ReportCacheKeys.m {
		if strings.HasPrefix(key, prefix) {
			Cache.Del(key)
			delete(ReportCacheKeys.m, key)
		}
	}
	ReportCacheKeys.Unlock()
}

func ClearAllReportCaches() {
	ReportCacheKeys.Lock()
	for key := range ReportCacheKeys.m {
		Cache.Del(key)
	}
	ReportCacheKeys.m = make(map[string]struct{})
	ReportCacheKeys.Unlock()
}
