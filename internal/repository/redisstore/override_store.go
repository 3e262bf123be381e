package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pulseward/icu-backend-go/internal/domain/schedule"
	"github.com/redis/go-redis/v9"
)

// overrideStore keeps locally recorded schedule overrides in a redis hash
// per staff member, one field per date key. Overrides are durable: they
// survive process restarts and are only replaced by a later write to the
// same field.
type overrideStore struct {
	client *redis.Client
}

func NewOverrideStore(client *redis.Client) schedule.OverrideStore {
	return &overrideStore{client: client}
}

func overrideKey(staffID string) string {
	return "schedule_overrides:" + staffID
}

// GetByStaff implements schedule.OverrideStore.
func (s *overrideStore) GetByStaff(ctx context.Context, staffID string) (map[string]schedule.Entry, error) {
	fields, err := s.client.HGetAll(ctx, overrideKey(staffID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule overrides: %w", err)
	}

	entries := make(map[string]schedule.Entry, len(fields))
	for dateKey, raw := range fields {
		var entry schedule.Entry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, fmt.Errorf("failed to decode override for %s: %w", dateKey, err)
		}
		entries[dateKey] = entry
	}

	return entries, nil
}

// Set implements schedule.OverrideStore.
func (s *overrideStore) Set(ctx context.Context, staffID, dateKey string, entry schedule.Entry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode override: %w", err)
	}

	if err := s.client.HSet(ctx, overrideKey(staffID), dateKey, raw).Err(); err != nil {
		return fmt.Errorf("failed to write schedule override: %w", err)
	}

	return nil
}

// SetMany implements schedule.OverrideStore.
func (s *overrideStore) SetMany(ctx context.Context, staffID string, entries map[string]schedule.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	fields := make(map[string]interface{}, len(entries))
	for dateKey, entry := range entries {
		raw, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to encode override for %s: %w", dateKey, err)
		}
		fields[dateKey] = raw
	}

	if err := s.client.HSet(ctx, overrideKey(staffID), fields).Err(); err != nil {
		return fmt.Errorf("failed to write schedule overrides: %w", err)
	}

	return nil
}

// Delete implements schedule.OverrideStore.
func (s *overrideStore) Delete(ctx context.Context, staffID, dateKey string) error {
	if err := s.client.HDel(ctx, overrideKey(staffID), dateKey).Err(); err != nil {
		return fmt.Errorf("failed to delete schedule override: %w", err)
	}

	return nil
}

// DeleteByStaff implements schedule.OverrideStore.
func (s *overrideStore) DeleteByStaff(ctx context.Context, staffID string) error {
	if err := s.client.Del(ctx, overrideKey(staffID)).Err(); err != nil {
		return fmt.Errorf("failed to delete schedule overrides: %w", err)
	}

	return nil
}
