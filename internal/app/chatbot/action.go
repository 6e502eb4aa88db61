/*
Package chatbot implements the scripted dialogue engine behind the site's
assistant widget.

The engine is a pure finite-state transducer: a static table maps an ActionID
to a handler producing the bot's reply text, the next set of selectable
options, and optionally the kind of free-text input the bot now expects.
Free text outside an expected input is resolved through a fixed keyword table.
The engine holds no conversation state; transcripts live in Conversation.
*/
package chatbot

// ActionID names one state of the dialogue script.
type ActionID string

const (
	ActionStart       ActionID = "start"
	ActionReservation ActionID = "reservation"
	ActionBookNow     ActionID = "book_now"
	ActionRoomInfo    ActionID = "room_info"
	ActionInquiry     ActionID = "inquiry"
	ActionServices    ActionID = "services"
	ActionRestaurants ActionID = "restaurants"
	ActionLeisure     ActionID = "leisure"
	ActionAmenities   ActionID = "amenities"
	ActionPets        ActionID = "pets"
	ActionCheckIn     ActionID = "check_in"
	ActionCheckOut    ActionID = "check_out"
	ActionSupport     ActionID = "support"
	ActionFeedback    ActionID = "feedback"
	ActionEnd         ActionID = "end"
)

// InputKind marks which category of free-text input the bot is waiting for
// after a reply. InputNone means option clicks or keyword matching apply.
type InputKind string

const (
	InputNone     InputKind = ""
	InputDates    InputKind = "dates"
	InputEmail    InputKind = "email"
	InputFeedback InputKind = "feedback"
)

// Option is one selectable follow-up offered under a bot message.
type Option struct {
	Label  string   `json:"label"`
	Action ActionID `json:"actionId"`
}

// Reply is the outcome of one dialogue transition.
type Reply struct {
	Text    string
	Options []Option
	Expect  InputKind
}

// handlerFunc produces the reply for an action. The input argument carries the
// user's free text when the action was reached through an expected input, and
// is empty for option clicks.
type handlerFunc func(input string) Reply
