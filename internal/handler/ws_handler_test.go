package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"serenity/internal/app/chat"
	"serenity/internal/app/chatbot"
	"serenity/internal/pkg/errs"
)

func dialAssistant(t *testing.T, env *testEnv) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(env.router)
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) chat.Envelope {
	t.Helper()

	if err := conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		t.Fatalf("set read deadline: %v", err)
	}

	var env chat.Envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	return env
}

func writeEnvelope(t *testing.T, conn *websocket.Conn, msgType chat.MessageType, payload any) {
	t.Helper()

	env, err := chat.NewEnvelope(msgType, payload)
	if err != nil {
		t.Fatalf("build %s frame: %v", msgType, err)
	}
	if err := conn.WriteJSON(env); err != nil {
		t.Fatalf("write %s frame: %v", msgType, err)
	}
}

func TestAssistantGreetsOnConnect(t *testing.T) {
	env := newTestEnv(t)
	conn := dialAssistant(t, env)

	frame := readEnvelope(t, conn)
	if frame.Type != chat.TypeInit {
		t.Fatalf("first frame type = %s, want %s", frame.Type, chat.TypeInit)
	}

	var init chat.InitPayload
	if err := json.Unmarshal(frame.Payload, &init); err != nil {
		t.Fatalf("unmarshal INIT payload: %v", err)
	}
	if len(init.Messages) != 1 {
		t.Fatalf("INIT should carry only the greeting, got %d messages", len(init.Messages))
	}
	if !init.Messages[0].FromBot || len(init.Messages[0].Options) != 5 {
		t.Errorf("unexpected greeting: %+v", init.Messages[0])
	}
}

func TestAssistantAnswersOptionClick(t *testing.T) {
	env := newTestEnv(t)
	conn := dialAssistant(t, env)
	readEnvelope(t, conn) // INIT

	writeEnvelope(t, conn, chat.TypeOption, chat.OptionPayload{ActionID: chatbot.ActionReservation})

	echo := readEnvelope(t, conn)
	if echo.Type != chat.TypeUserMessage {
		t.Fatalf("first reply frame = %s, want %s", echo.Type, chat.TypeUserMessage)
	}
	var userFrame chat.MessagePayload
	if err := json.Unmarshal(echo.Payload, &userFrame); err != nil {
		t.Fatalf("unmarshal USER_MESSAGE: %v", err)
	}
	if userFrame.Message.Text != "Fazer uma reserva" {
		t.Errorf("echoed user message = %q", userFrame.Message.Text)
	}

	reply := readEnvelope(t, conn)
	if reply.Type != chat.TypeBotMessage {
		t.Fatalf("second reply frame = %s, want %s", reply.Type, chat.TypeBotMessage)
	}
	var botFrame chat.MessagePayload
	if err := json.Unmarshal(reply.Payload, &botFrame); err != nil {
		t.Fatalf("unmarshal BOT_MESSAGE: %v", err)
	}
	if len(botFrame.Message.Options) != 2 {
		t.Errorf("reservation reply should offer 2 options, got %d", len(botFrame.Message.Options))
	}
}

func TestAssistantAnswersFreeText(t *testing.T) {
	env := newTestEnv(t)
	conn := dialAssistant(t, env)
	readEnvelope(t, conn) // INIT

	writeEnvelope(t, conn, chat.TypeText, chat.TextPayload{Text: "vocês aceitam pets?"})

	readEnvelope(t, conn) // USER_MESSAGE echo

	reply := readEnvelope(t, conn)
	if reply.Type != chat.TypeBotMessage {
		t.Fatalf("reply frame = %s, want %s", reply.Type, chat.TypeBotMessage)
	}
	var botFrame chat.MessagePayload
	if err := json.Unmarshal(reply.Payload, &botFrame); err != nil {
		t.Fatalf("unmarshal BOT_MESSAGE: %v", err)
	}
	if !strings.Contains(botFrame.Message.Text, "pet-friendly") {
		t.Errorf("expected the pets reply, got %q", botFrame.Message.Text)
	}
}

func TestAssistantRejectsStaleOption(t *testing.T) {
	env := newTestEnv(t)
	conn := dialAssistant(t, env)
	readEnvelope(t, conn) // INIT

	writeEnvelope(t, conn, chat.TypeOption, chat.OptionPayload{ActionID: chatbot.ActionReservation})
	readEnvelope(t, conn) // USER_MESSAGE
	readEnvelope(t, conn) // BOT_MESSAGE

	// ActionServices was only offered by the greeting, which is now history.
	writeEnvelope(t, conn, chat.TypeOption, chat.OptionPayload{ActionID: chatbot.ActionServices})

	frame := readEnvelope(t, conn)
	if frame.Type != chat.TypeError {
		t.Fatalf("frame type = %s, want %s", frame.Type, chat.TypeError)
	}
	var errFrame chat.ErrorPayload
	if err := json.Unmarshal(frame.Payload, &errFrame); err != nil {
		t.Fatalf("unmarshal ERROR payload: %v", err)
	}
	if errFrame.Code != errs.ErrInvalidParams {
		t.Errorf("error code = %d, want %d", errFrame.Code, errs.ErrInvalidParams)
	}
}

func TestAssistantRejectsOversizedText(t *testing.T) {
	env := newTestEnv(t)
	conn := dialAssistant(t, env)
	readEnvelope(t, conn) // INIT

	writeEnvelope(t, conn, chat.TypeText, chat.TextPayload{Text: strings.Repeat("a", chat.MaxTextBytes+1)})

	frame := readEnvelope(t, conn)
	if frame.Type != chat.TypeError {
		t.Fatalf("frame type = %s, want %s", frame.Type, chat.TypeError)
	}
	var errFrame chat.ErrorPayload
	if err := json.Unmarshal(frame.Payload, &errFrame); err != nil {
		t.Fatalf("unmarshal ERROR payload: %v", err)
	}
	if errFrame.Code != errs.ErrMessageContentTooLong {
		t.Errorf("error code = %d, want %d", errFrame.Code, errs.ErrMessageContentTooLong)
	}
}
