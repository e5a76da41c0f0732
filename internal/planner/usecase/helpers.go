package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"day-planner/internal/model"
)

// inputFingerprint produces a stable digest of everything a plan run reads.
// Two runs over an unchanged store and date hash identically, which is what
// makes the result cache safe: any store change yields a new key.
func inputFingerprint(date string, slots []model.Slot, tasks []model.Task, profile model.Profile, overrideActive bool) string {
	var sb strings.Builder

	sb.WriteString(date)
	fmt.Fprintf(&sb, "|ov=%t", overrideActive)

	for _, s := range slots {
		num := -1
		if s.Number != nil {
			num = *s.Number
		}
		fmt.Fprintf(&sb, "|s:%d,%s,%s,%s,%s,%d", num, s.Start, s.End, s.Label, s.Kind, s.Weekday)
	}

	for _, t := range tasks {
		fmt.Fprintf(&sb, "|t:%s,%s,%s,%s,%s,%d", t.ID, t.Subject, t.EffectiveState(), t.Load, t.CreatedAt.UTC().Format("20060102T150405"), t.EstimatedMinutes)
		if t.DueAt != nil {
			fmt.Fprintf(&sb, ",due=%d", t.DueAt.Unix())
		}
		if t.AvailableOn != nil {
			fmt.Fprintf(&sb, ",av=%d", t.AvailableOn.Unix())
		}
		if t.Assignment != nil {
			fmt.Fprintf(&sb, ",as=%s#%d", t.Assignment.Day, t.Assignment.SlotNumber)
		}
		if t.HasParts {
			sb.WriteString(",split")
		}
	}

	fmt.Fprintf(&sb, "|p:%s", profile.AnchorSubject)
	for _, subject := range sortedKeys(profile.SubjectDailyCap) {
		fmt.Fprintf(&sb, ",cap:%s=%d", subject, profile.SubjectDailyCap[subject])
	}
	for _, subject := range sortedKeys(profile.PreferredSlots) {
		fmt.Fprintf(&sb, ",pref:%s=%v", subject, profile.PreferredSlots[subject])
	}

	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
