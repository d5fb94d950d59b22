// Package chat implements the conversation panel: an append-only
// transcript whose messages may carry citations into the viewed document.
// There is no real backend; sending a message appends a canned assistant
// reply after a fixed delay.
package chat

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Panel owns the transcript. Messages are append-only; the delayed mock
// reply is an explicit task cancelled by Close, so a real backend can
// later replace the timer with a network call without changing the append
// contract.
type Panel struct {
	mu       sync.Mutex
	messages []Message
	subs     map[chan Message]struct{}

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	replyDelay time.Duration
	now        func() time.Time
}

// NewPanel creates a panel seeded with the fixed opening transcript.
func NewPanel(replyDelay time.Duration) *Panel {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Panel{
		subs:       make(map[chan Message]struct{}),
		ctx:        ctx,
		cancel:     cancel,
		replyDelay: replyDelay,
		now:        time.Now,
	}
	for _, m := range seedMessages() {
		p.append(m)
	}
	return p
}

// Close cancels pending delayed replies and waits for them to settle.
func (p *Panel) Close() {
	p.cancel()
	p.wg.Wait()
}

// Messages returns the transcript in append order.
func (p *Panel) Messages() []Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Message, len(p.messages))
	copy(out, p.messages)
	return out
}

// Message returns the message with the given id, or nil.
func (p *Panel) Message(id string) *Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.messages {
		if p.messages[i].ID == id {
			m := p.messages[i]
			return &m
		}
	}
	return nil
}

// Send appends a user message and schedules the canned assistant reply
// after the configured delay. Each send gets its own independent reply;
// interleaved sends are not coalesced and replies append whenever their
// timer fires.
func (p *Panel) Send(content string) Message {
	msg := Message{
		ID:        uuid.NewString(),
		Content:   content,
		IsUser:    true,
		Timestamp: p.now(),
	}
	p.append(msg)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		timer := time.NewTimer(p.replyDelay)
		defer timer.Stop()
		select {
		case <-p.ctx.Done():
			return
		case <-timer.C:
		}
		reply := cannedReply()
		reply.ID = uuid.NewString()
		reply.Timestamp = p.now()
		p.append(reply)
	}()

	return msg
}

// Subscribe registers a channel receiving every appended message. The
// returned cancel func unregisters it. Slow subscribers miss messages
// rather than block the panel.
func (p *Panel) Subscribe() (<-chan Message, func()) {
	ch := make(chan Message, 16)
	p.mu.Lock()
	p.subs[ch] = struct{}{}
	p.mu.Unlock()

	return ch, func() {
		p.mu.Lock()
		delete(p.subs, ch)
		p.mu.Unlock()
	}
}

func (p *Panel) append(m Message) {
	p.mu.Lock()
	p.messages = append(p.messages, m)
	for ch := range p.subs {
		select {
		case ch <- m:
		default:
		}
	}
	p.mu.Unlock()
}
