package domain

type Message struct {
	ID        int
	ChatID    int64
	Username  string
	RequestID string
	Text      string
}

type Action string

const (
	Typing Action = "typing"
)

// CommandInfo is the name and description pair published to the messaging platform.
type CommandInfo struct {
	Command     string
	Description string
}

type Weather struct {
	Condition string
	TempC     float64
	Humidity  int
	WindKph   float64
}

type JokeType string

const (
	SingleJoke  JokeType = "single"
	TwoPartJoke JokeType = "twopart"
)

type Joke struct {
	Type     JokeType
	Text     string
	Setup    string
	Delivery string
}

type Article struct {
	Title       string
	Description string
	URL         string
}
