package fitness

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/healthrec/healthrec/internal/platform/health"
)

var SleepTypeID = uuid.MustParse("11c52484-7f1a-11db-aeac-87d355d89593")

// Wake states reported in the morning sleep journal.
const (
	WakeStateWideAwake = 1
	WakeStateAwake     = 2
	WakeStateSleepy    = 3
)

func init() {
	health.Register(SleepTypeID, "sleep-am", "Sleep",
		func() health.Data { return &Sleep{} })
}

// Awakening is one interruption during the night.
type Awakening struct {
	When    health.Time `xml:"when"`
	Minutes int         `xml:"minutes"`
}

// Sleep is a morning journal entry describing the previous night.
type Sleep struct {
	When            health.DateTime      `xml:"when"`
	BedTime         health.Time          `xml:"bed-time"`
	WakeTime        health.Time          `xml:"wake-time"`
	SleepMinutes    int                  `xml:"sleep-minutes"`
	SettlingMinutes int                  `xml:"settling-minutes"`
	Awakenings      []Awakening          `xml:"awakening,omitempty"`
	Medications     *health.CodableValue `xml:"medications,omitempty"`
	WakeState       int                  `xml:"wake-state"`
}

func (s *Sleep) TypeID() uuid.UUID   { return SleepTypeID }
func (s *Sleep) RootElement() string { return "sleep-am" }

func (s *Sleep) Validate() error {
	if err := s.When.Validate(); err != nil {
		return err
	}
	if err := s.BedTime.Validate(); err != nil {
		return fmt.Errorf("bed-time: %w", err)
	}
	if err := s.WakeTime.Validate(); err != nil {
		return fmt.Errorf("wake-time: %w", err)
	}
	if s.SleepMinutes < 0 {
		return fmt.Errorf("sleep-minutes must not be negative, got %d", s.SleepMinutes)
	}
	if s.SettlingMinutes < 0 {
		return fmt.Errorf("settling-minutes must not be negative, got %d", s.SettlingMinutes)
	}
	if s.WakeState < WakeStateWideAwake || s.WakeState > WakeStateSleepy {
		return fmt.Errorf("wake-state %d out of range 1-3", s.WakeState)
	}
	for i := range s.Awakenings {
		if err := s.Awakenings[i].When.Validate(); err != nil {
			return fmt.Errorf("awakening %d: %w", i+1, err)
		}
		if s.Awakenings[i].Minutes < 0 {
			return fmt.Errorf("awakening %d: minutes must not be negative", i+1)
		}
	}
	if s.Medications != nil {
		if err := s.Medications.Validate(); err != nil {
			return fmt.Errorf("medications: %w", err)
		}
	}
	return nil
}

func (s *Sleep) Codables() []health.CodableValue {
	return health.CollectCodables(s.Medications)
}

func (s *Sleep) Summary() string {
	h := s.SleepMinutes / 60
	m := s.SleepMinutes % 60
	return fmt.Sprintf("slept %dh%02dm, %d awakening(s)", h, m, len(s.Awakenings))
}
