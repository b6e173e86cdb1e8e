package worktime

import (
	"encoding/json"
	"sync"
	"time"

	"storehours/pkg/models"
)

// Cached is an opt-in memoizing wrapper around the package operations.
// Every operation is a pure function of its arguments, so results are
// cached forever: one map per operation, keyed by a deterministic
// serialization of the call's arguments. The maps sit behind one lock so
// a shared instance is safe across goroutines.
type Cached struct {
	mu           sync.Mutex
	isWorkNow    map[string]isWorkNowEntry
	workTime     map[string]workTimeEntry
	deliveryTime map[string]stringEntry
	pickupTime   map[string]stringEntry
	maxOrderDate map[string]stringEntry
}

type isWorkNowEntry struct {
	result models.ValidatorResult
	err    error
}

type workTimeEntry struct {
	rule models.WorkTimeRule
	err  error
}

type stringEntry struct {
	value string
	err   error
}

func NewCached() *Cached {
	return &Cached{
		isWorkNow:    make(map[string]isWorkNowEntry),
		workTime:     make(map[string]workTimeEntry),
		deliveryTime: make(map[string]stringEntry),
		pickupTime:   make(map[string]stringEntry),
		maxOrderDate: make(map[string]stringEntry),
	}
}

// cacheKey serializes the arguments canonically. The instant keeps its
// UTC offset, since results depend on the caller's zone. Restriction
// objects are plain data so marshaling cannot fail for well-formed input;
// should it fail anyway, ok is false and the call bypasses the cache
// instead of inserting an entry no later call could ever hit.
func cacheKey(args any, t time.Time) (string, bool) {
	encoded, err := json.Marshal(args)
	if err != nil {
		return "", false
	}
	return string(encoded) + "|" + t.Format(time.RFC3339), true
}

func (c *Cached) IsWorkNow(r models.Restrictions, now time.Time) (models.ValidatorResult, error) {
	key, ok := cacheKey(r, now)
	if !ok {
		return IsWorkNow(r, now)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.isWorkNow[key]; ok {
		return entry.result, entry.err
	}
	result, err := IsWorkNow(r, now)
	c.isWorkNow[key] = isWorkNowEntry{result: result, err: err}
	return result, err
}

func (c *Cached) CurrentWorkTime(r models.Restrictions, date time.Time) (models.WorkTimeRule, error) {
	key, ok := cacheKey(r, date)
	if !ok {
		return CurrentWorkTime(r, date)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.workTime[key]; ok {
		return entry.rule, entry.err
	}
	rule, err := CurrentWorkTime(r, date)
	c.workTime[key] = workTimeEntry{rule: rule, err: err}
	return rule, err
}

func (c *Cached) NextDeliveryTime(ro models.RestrictionsOrder, now time.Time) (string, error) {
	return c.cachedString(c.deliveryTime, NextDeliveryTime, ro, now)
}

func (c *Cached) NextPickupTime(ro models.RestrictionsOrder, now time.Time) (string, error) {
	return c.cachedString(c.pickupTime, NextPickupTime, ro, now)
}

func (c *Cached) MaxOrderDate(ro models.RestrictionsOrder, now time.Time) (string, error) {
	return c.cachedString(c.maxOrderDate, MaxOrderDate, ro, now)
}

func (c *Cached) cachedString(cache map[string]stringEntry, op func(models.RestrictionsOrder, time.Time) (string, error), ro models.RestrictionsOrder, now time.Time) (string, error) {
	key, ok := cacheKey(ro, now)
	if !ok {
		return op(ro, now)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := cache[key]; ok {
		return entry.value, entry.err
	}
	value, err := op(ro, now)
	cache[key] = stringEntry{value: value, err: err}
	return value, err
}
