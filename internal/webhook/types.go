package webhook

// SignatureHeader is the request header carrying the payload signature.
const SignatureHeader = "x-line-signature"

// Envelope is the JSON body delivered by the chat platform, describing
// one or more events. An absent events field means an empty batch.
type Envelope struct {
	Destination string  `json:"destination"`
	Events      []Event `json:"events"`
}

// Event is one platform event. Events are immutable once received; the
// reply token is single-use and authorizes exactly one reply exchange.
type Event struct {
	Type       string   `json:"type"`
	ReplyToken string   `json:"replyToken"`
	Source     Source   `json:"source"`
	Message    *Message `json:"message"`
}

// Source identifies where an event originated.
type Source struct {
	UserID  string `json:"userId"`
	GroupID string `json:"groupId"`
	RoomID  string `json:"roomId"`
}

// Message is the message attached to a message event.
type Message struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Kind classifies an event for the pipeline.
type Kind int

const (
	// KindUnsupported covers events without a message and message types
	// the bot does not transcribe. Malformed events fail closed here.
	KindUnsupported Kind = iota
	KindAudio
	KindVideo
)

// Kind returns the event classification.
func (e Event) Kind() Kind {
	if e.Type != "message" || e.Message == nil {
		return KindUnsupported
	}
	switch e.Message.Type {
	case "audio":
		return KindAudio
	case "video":
		return KindVideo
	default:
		return KindUnsupported
	}
}

// ChatID returns the identifier of the originating conversation, used by
// the loading indicator.
func (s Source) ChatID() string {
	switch {
	case s.GroupID != "":
		return s.GroupID
	case s.RoomID != "":
		return s.RoomID
	default:
		return s.UserID
	}
}
