package api

// MessageOK is the envelope message the server sends when a request was
// accepted.
const MessageOK = "OK"

// Envelope wraps every response body.
type Envelope[T any] struct {
	Code    int    `json:"Code"`
	Message string `json:"Message"`
	Data    T      `json:"data"`
}

// OK reports whether the server accepted the request.
func (e Envelope[T]) OK() bool {
	return e.Message == MessageOK
}

// PlayInfo is the server's view of the current board.
type PlayInfo struct {
	Flag      int      `json:"flag"`
	Info      []string `json:"info"` // card identity per cell, "" when face down
	MaxScore  int      `json:"max_score"`
	RealScore int      `json:"real_score"`
	Score     int      `json:"score"`
	Stage     int      `json:"stage"`
	Times     int      `json:"times"`
}

// TaskInfo holds the daily task flags shown on the event page.
type TaskInfo struct {
	CanGetAssist int `json:"can_get_assist"`
	GameLogin    int `json:"game_login"`
	LoginH5      int `json:"login_h5"`
	Share        int `json:"share"`
}

// InfoData is returned by GET /info.
type InfoData struct {
	BeAssistNum    int      `json:"be_assist_num"`
	Code           string   `json:"code"`
	DayCanGetScore int      `json:"day_can_get_score"`
	GachaNum       int      `json:"gacha_num"`
	GachaScore     int      `json:"gacha_score"`
	GameUID        int      `json:"game_uid"`
	PlayInfo       PlayInfo `json:"play_info"`
	PlayNum        int      `json:"play_num"`
	TaskInfo       TaskInfo `json:"task_info"`
}

// RefreshData is returned by POST /refresh.
type RefreshData struct {
	PlayInfo  PlayInfo `json:"play_info"`
	PlayTimes int      `json:"play_times"`
}

// ClickData is returned by POST /play_click.
type ClickData struct {
	CardID    string   `json:"card_id"`
	GachaNum  int      `json:"gacha_num"`
	Num       int      `json:"num"`
	PlayInfo  PlayInfo `json:"play_info"`
	PlayTimes int      `json:"play_times"`
}

// GachaData is returned by POST /gacha.
type GachaData struct {
	IsCode   int    `json:"is_code"`
	Name     string `json:"name"`
	Pic      string `json:"pic"`
	RecordID int    `json:"record_id"`
}
