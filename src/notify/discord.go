package notify

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/signalworks/intent-engine/src/agentic/types"
)

// Notifier posts immediate-outreach decisions to a Discord channel. Nil
// notifiers are safe to call, so the service runs fine without a token.
type Notifier struct {
	session   *discordgo.Session
	channelID string
}

func New(token, channelID string) (*Notifier, error) {
	if token == "" || channelID == "" {
		return nil, nil
	}
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord: %w", err)
	}
	if err := session.Open(); err != nil {
		return nil, fmt.Errorf("discord open: %w", err)
	}
	return &Notifier{session: session, channelID: channelID}, nil
}

func (n *Notifier) Close() {
	if n == nil {
		return
	}
	_ = n.session.Close()
}

// NotifyImmediate sends one alert per schedule_immediate_outreach decision.
// Send failures are logged and swallowed; notification must never fail a
// batch.
func (n *Notifier) NotifyImmediate(signals []types.Signal) {
	if n == nil {
		return
	}
	for i := range signals {
		sig := &signals[i]
		for _, dec := range sig.AutonomousDecisions {
			if dec.Action != "schedule_immediate_outreach" {
				continue
			}
			msg := fmt.Sprintf("**Immediate outreach**: %s (priority %.2f, confidence %.2f)\n%s",
				sig.CompanyName, sig.AIPriorityScore, dec.Confidence, dec.Reasoning)
			if _, err := n.session.ChannelMessageSend(n.channelID, msg); err != nil {
				log.Printf("notify: discord send failed: %v", err)
			}
		}
	}
}
