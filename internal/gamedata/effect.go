package gamedata

import "fmt"

// EffectKind names an effect variant as it appears in encounters.json.
type EffectKind string

const (
	KindHeal         EffectKind = "heal"
	KindFullHeal     EffectKind = "full_heal"
	KindDamage       EffectKind = "damage"
	KindItem         EffectKind = "item"
	KindXP           EffectKind = "xp"
	KindBuff         EffectKind = "buff"
	KindCurse        EffectKind = "curse"
	KindKarma        EffectKind = "karma"
	KindCombat       EffectKind = "combat"
	KindRevealMap    EffectKind = "reveal_map"
	KindRandom       EffectKind = "random"
	KindFinalTest    EffectKind = "final_test"
	KindNone         EffectKind = "none"
	KindTeleport     EffectKind = "teleport_random"
	KindStairsReveal EffectKind = "stairs_reveal"
)

// Effect is one outcome of an encounter choice. The set of variants is
// closed; consumers switch on the concrete type.
type Effect interface {
	Kind() EffectKind
	effect()
}

type (
	// Heal restores Amount HP, capped at max HP.
	Heal struct{ Amount int }
	// FullHeal restores HP to max.
	FullHeal struct{}
	// Damage removes Amount HP, floored at zero.
	Damage struct{ Amount int }
	// GrantItem adds an item to the player's inventory.
	GrantItem struct{ ItemID string }
	// GrantXP awards experience.
	GrantXP struct{ Amount int }
	// Buff raises a player stat.
	Buff struct {
		Stat   string
		Amount int
	}
	// Curse lowers a player stat. Amount is usually negative.
	Curse struct {
		Stat   string
		Amount int
	}
	// Karma adjusts the hidden karma score.
	Karma struct{ Amount int }
	// StartCombat begins a fight with a fresh instance of EnemyID.
	StartCombat struct{ EnemyID string }
	// RevealMap clears the fog for the whole level.
	RevealMap struct{}
	// Random resolves Good or Bad with even odds.
	Random struct{ Good, Bad Effect }
	// FinalTest ends the run with the named victory.
	FinalTest struct{ Test string }
	// NoEffect does nothing.
	NoEffect struct{}
	// Teleport moves the player to a random floor cell in a random room.
	Teleport struct{}
	// RevealStairs reveals the stairs cell and its neighborhood.
	RevealStairs struct{}
)

func (Heal) Kind() EffectKind         { return KindHeal }
func (FullHeal) Kind() EffectKind     { return KindFullHeal }
func (Damage) Kind() EffectKind       { return KindDamage }
func (GrantItem) Kind() EffectKind    { return KindItem }
func (GrantXP) Kind() EffectKind      { return KindXP }
func (Buff) Kind() EffectKind         { return KindBuff }
func (Curse) Kind() EffectKind        { return KindCurse }
func (Karma) Kind() EffectKind        { return KindKarma }
func (StartCombat) Kind() EffectKind  { return KindCombat }
func (RevealMap) Kind() EffectKind    { return KindRevealMap }
func (Random) Kind() EffectKind       { return KindRandom }
func (FinalTest) Kind() EffectKind    { return KindFinalTest }
func (NoEffect) Kind() EffectKind     { return KindNone }
func (Teleport) Kind() EffectKind     { return KindTeleport }
func (RevealStairs) Kind() EffectKind { return KindStairsReveal }

func (Heal) effect()         {}
func (FullHeal) effect()     {}
func (Damage) effect()       {}
func (GrantItem) effect()    {}
func (GrantXP) effect()      {}
func (Buff) effect()         {}
func (Curse) effect()        {}
func (Karma) effect()        {}
func (StartCombat) effect()  {}
func (RevealMap) effect()    {}
func (Random) effect()       {}
func (FinalTest) effect()    {}
func (NoEffect) effect()     {}
func (Teleport) effect()     {}
func (RevealStairs) effect() {}

// rawEffect is the JSON shape of an effect before it is narrowed to a variant.
type rawEffect struct {
	Type  EffectKind `json:"type"`
	Value int        `json:"value"`
	Item  string     `json:"item"`
	Stat  string     `json:"stat"`
	Enemy string     `json:"enemy"`
	Test  string     `json:"test"`
	Good  *rawEffect `json:"good"`
	Bad   *rawEffect `json:"bad"`
}

func (r *rawEffect) decode() (Effect, error) {
	if r == nil {
		return NoEffect{}, nil
	}
	switch r.Type {
	case KindHeal:
		return Heal{Amount: r.Value}, nil
	case KindFullHeal:
		return FullHeal{}, nil
	case KindDamage:
		return Damage{Amount: r.Value}, nil
	case KindItem:
		if r.Item == "" {
			return nil, fmt.Errorf("item effect missing item id")
		}
		return GrantItem{ItemID: r.Item}, nil
	case KindXP:
		return GrantXP{Amount: r.Value}, nil
	case KindBuff:
		return Buff{Stat: r.Stat, Amount: r.Value}, nil
	case KindCurse:
		return Curse{Stat: r.Stat, Amount: r.Value}, nil
	case KindKarma:
		return Karma{Amount: r.Value}, nil
	case KindCombat:
		if r.Enemy == "" {
			return nil, fmt.Errorf("combat effect missing enemy id")
		}
		return StartCombat{EnemyID: r.Enemy}, nil
	case KindRevealMap:
		return RevealMap{}, nil
	case KindRandom:
		if r.Good == nil || r.Bad == nil {
			return nil, fmt.Errorf("random effect needs both good and bad")
		}
		good, err := r.Good.decode()
		if err != nil {
			return nil, fmt.Errorf("random good: %w", err)
		}
		bad, err := r.Bad.decode()
		if err != nil {
			return nil, fmt.Errorf("random bad: %w", err)
		}
		return Random{Good: good, Bad: bad}, nil
	case KindFinalTest:
		if r.Test == "" {
			return nil, fmt.Errorf("final_test effect missing test")
		}
		return FinalTest{Test: r.Test}, nil
	case KindNone, "":
		return NoEffect{}, nil
	case KindTeleport:
		return Teleport{}, nil
	case KindStairsReveal:
		return RevealStairs{}, nil
	default:
		return nil, fmt.Errorf("unknown effect type %q", r.Type)
	}
}

// DecodeEffect parses a single effect object.
func DecodeEffect(data []byte) (Effect, error) {
	var raw rawEffect
	if err := decodeStrict(data, &raw); err != nil {
		return nil, err
	}
	return raw.decode()
}
