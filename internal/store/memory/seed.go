package memory

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"day-planner/internal/model"
)

// seedFile is the on-disk fixture format for the memory store.
type seedFile struct {
	Profiles  []seedProfile  `yaml:"profiles"`
	Templates []seedTemplate `yaml:"templates"`
	Overrides []seedOverride `yaml:"overrides"`
	Tasks     []seedTask     `yaml:"tasks"`
}

type seedProfile struct {
	Person         string           `yaml:"person"`
	AnchorSubject  string           `yaml:"anchor_subject"`
	SubjectCap     map[string]int   `yaml:"subject_daily_cap"`
	PreferredSlots map[string][]int `yaml:"preferred_slots"`
}

type seedTemplate struct {
	Person  string     `yaml:"person"`
	Weekday string     `yaml:"weekday"`
	Slots   []seedSlot `yaml:"slots"`
}

type seedSlot struct {
	Number *int   `yaml:"number"`
	Start  string `yaml:"start"`
	End    string `yaml:"end"`
	Label  string `yaml:"label"`
	Kind   string `yaml:"kind"`
}

type seedOverride struct {
	Person string `yaml:"person"`
	Date   string `yaml:"date"`
}

type seedTask struct {
	Person           string `yaml:"person"`
	Title            string `yaml:"title"`
	Subject          string `yaml:"subject"`
	Due              string `yaml:"due"` // "2006-01-02 15:04" or "2006-01-02"
	AvailableOn      string `yaml:"available_on"`
	State            string `yaml:"state"`
	Load             string `yaml:"load"`
	EstimatedMinutes int    `yaml:"estimated_minutes"`
}

// LoadSeed populates the store from a YAML fixture file.
func (s *Store) LoadSeed(path string, loc *time.Location) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("failed to decode seed file: %w", err)
	}

	for _, p := range seed.Profiles {
		s.SetProfile(model.Profile{
			Person:          p.Person,
			AnchorSubject:   p.AnchorSubject,
			SubjectDailyCap: p.SubjectCap,
			PreferredSlots:  p.PreferredSlots,
		})
	}

	for _, tpl := range seed.Templates {
		weekday, err := parseWeekday(tpl.Weekday)
		if err != nil {
			return err
		}
		slots := make([]model.Slot, 0, len(tpl.Slots))
		for _, raw := range tpl.Slots {
			slots = append(slots, model.Slot{
				Weekday: weekday,
				Number:  raw.Number,
				Start:   raw.Start,
				End:     raw.End,
				Label:   raw.Label,
				Kind:    slotKind(raw.Kind),
			})
		}
		s.SetTemplate(tpl.Person, weekday, slots)
	}

	for _, o := range seed.Overrides {
		s.SetOverride(o.Person, o.Date, true)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range seed.Tasks {
		due, err := parseSeedTime(st.Due, loc)
		if err != nil {
			return fmt.Errorf("task %q: %w", st.Title, err)
		}
		available, err := parseSeedTime(st.AvailableOn, loc)
		if err != nil {
			return fmt.Errorf("task %q: %w", st.Title, err)
		}

		t := model.Task{
			ID:               "seed-" + strings.ReplaceAll(strings.ToLower(st.Title), " ", "-"),
			Person:           st.Person,
			Title:            st.Title,
			Subject:          st.Subject,
			DueAt:            due,
			AvailableOn:      available,
			CreatedAt:        time.Now().UTC(),
			State:            model.TaskState(st.State),
			Load:             model.CognitiveLoad(st.Load),
			EstimatedMinutes: st.EstimatedMinutes,
		}
		s.tasks[t.ID] = t
		s.taskOrder = append(s.taskOrder, t.ID)
	}

	return nil
}

func parseWeekday(name string) (time.Weekday, error) {
	weekdays := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}
	d, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q in seed file", name)
	}
	return d, nil
}

func slotKind(kind string) model.SlotKind {
	switch strings.ToLower(kind) {
	case "fixed":
		return model.SlotKindFixed
	case "special":
		return model.SlotKindSpecial
	default:
		return model.SlotKindAssignment
	}
}

func parseSeedTime(value string, loc *time.Location) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid time %q", value)
}
