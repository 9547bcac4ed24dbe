package gamedata

import "fmt"

// EncounterDef is a narrative event offered at a shrine.
type EncounterDef struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Text    string      `json:"text"`
	Choices []ChoiceDef `json:"choices"`
}

// CostDef is paid before a choice's effect resolves. HP and Defense are
// deltas (usually negative); Turns advances the turn counter.
type CostDef struct {
	HP      int `json:"hp"`
	Defense int `json:"defense"`
	Turns   int `json:"turns"`
}

// ChoiceDef is one option of an encounter.
type ChoiceDef struct {
	Text     string
	Result   string // key into the result text table
	Effect   Effect
	Cost     *CostDef
	Reward   Effect // nil when the choice carries no reward
	Requires string // item ID the player must hold, or ""
}

type rawChoice struct {
	Text     string     `json:"text"`
	Result   string     `json:"result"`
	Effect   *rawEffect `json:"effect"`
	Cost     *CostDef   `json:"cost"`
	Reward   *rawEffect `json:"reward"`
	Requires string     `json:"requires"`
}

// UnmarshalJSON decodes a choice and narrows its effects to concrete variants.
func (c *ChoiceDef) UnmarshalJSON(data []byte) error {
	var raw rawChoice
	if err := decodeStrict(data, &raw); err != nil {
		return err
	}
	effect, err := raw.Effect.decode()
	if err != nil {
		return fmt.Errorf("choice %q effect: %w", raw.Text, err)
	}
	var reward Effect
	if raw.Reward != nil {
		if reward, err = raw.Reward.decode(); err != nil {
			return fmt.Errorf("choice %q reward: %w", raw.Text, err)
		}
	}
	*c = ChoiceDef{
		Text:     raw.Text,
		Result:   raw.Result,
		Effect:   effect,
		Cost:     raw.Cost,
		Reward:   reward,
		Requires: raw.Requires,
	}
	return nil
}

// EncountersFile represents the structure of encounters.json.
type EncountersFile struct {
	Encounters []EncounterDef `json:"encounters"`
}

// LoadEncounters loads encounter definitions from the embedded encounters.json file.
func LoadEncounters() ([]EncounterDef, error) {
	file, err := Load[EncountersFile]("encounters.json")
	if err != nil {
		return nil, err
	}
	return file.Encounters, nil
}
