package gamedata

// Final test kinds, also used as victory message keys.
const (
	TestCourage = "courage"
	TestHonesty = "honesty"
	TestCombat  = "combat"
)

// TextFile represents the structure of text.json: encounter result prose and
// end-of-run messages.
type TextFile struct {
	Results         map[string]string `json:"results"`
	DeathMessages   []string          `json:"deathMessages"`
	VictoryMessages map[string]string `json:"victoryMessages"`
}

// LoadText loads narrative text from the embedded text.json file.
func LoadText() (TextFile, error) {
	return Load[TextFile]("text.json")
}
