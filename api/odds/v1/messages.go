package oddsv1

// Counts is an exact round distribution.
type Counts struct {
	AtkWin int `json:"atk_win"`
	Tie    int `json:"tie"`
	DefWin int `json:"def_win"`
}

// Percentages is a round distribution formatted with two decimals.
type Percentages struct {
	AtkWin string `json:"atk_win"`
	Tie    string `json:"tie"`
	DefWin string `json:"def_win"`
}

type RollResultsRequest struct {
	AttackDice    int    `json:"attack_dice"`
	DefenseDice   int    `json:"defense_dice"`
	DefenderBonus []int  `json:"defender_bonus,omitempty"`
	Preset        string `json:"preset,omitempty"`
}

type RollResultsResponse struct {
	Counts      Counts      `json:"counts"`
	Total       int         `json:"total"`
	Percentages Percentages `json:"percentages"`
	Schedule    string      `json:"schedule"`
}

type BattleRequest struct {
	Attackers     int    `json:"attackers"`
	Defenders     int    `json:"defenders"`
	DefenderBonus []int  `json:"defender_bonus,omitempty"`
	Preset        string `json:"preset,omitempty"`
}

type BattleResponse struct {
	AtkWinPerc     string  `json:"atk_win_perc"`
	AtkAvgLoss     string  `json:"atk_avg_loss"`
	WinProbability float64 `json:"win_probability"`
	ExpectedLoss   float64 `json:"expected_loss"`
	Schedule       string  `json:"schedule"`
	// Cached is true when the same battle was already in the record log.
	Cached bool `json:"cached"`
	Hits   int  `json:"hits"`
}

// RollRoundRequest rolls one random round. Seed is a decimal int64; when
// empty the server picks one and returns it.
type RollRoundRequest struct {
	AttackDice    int    `json:"attack_dice"`
	DefenseDice   int    `json:"defense_dice"`
	DefenderBonus []int  `json:"defender_bonus,omitempty"`
	Preset        string `json:"preset,omitempty"`
	Seed          string `json:"seed,omitempty"`
}

type RollRoundResponse struct {
	Attack         []int  `json:"attack"`
	Defense        []int  `json:"defense"`
	AttackerLosses int    `json:"attacker_losses"`
	DefenderLosses int    `json:"defender_losses"`
	Bucket         string `json:"bucket"`
	Seed           string `json:"seed"`
	SeedGenerated  bool   `json:"seed_generated"`
}

type ListPresetsRequest struct{}

type Preset struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	DefenderBonus []int  `json:"defender_bonus"`
}

type ListPresetsResponse struct {
	Presets []Preset `json:"presets"`
}

// ListBattleRecordsRequest pages through recorded battles. Filter is an
// AIP-160 expression over attackers, defenders, schedule, win_probability,
// expected_loss and hits.
type ListBattleRecordsRequest struct {
	Filter    string `json:"filter,omitempty"`
	PageSize  int32  `json:"page_size,omitempty"`
	PageToken string `json:"page_token,omitempty"`
}

type BattleRecord struct {
	Attackers      int     `json:"attackers"`
	Defenders      int     `json:"defenders"`
	Schedule       string  `json:"schedule"`
	WinProbability float64 `json:"win_probability"`
	ExpectedLoss   float64 `json:"expected_loss"`
	Hits           int     `json:"hits"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type ListBattleRecordsResponse struct {
	Records       []BattleRecord `json:"records"`
	NextPageToken string         `json:"next_page_token,omitempty"`
}
