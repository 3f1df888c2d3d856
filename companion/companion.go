// Package companion holds the top-level orchestrator. One Companion owns
// one conversation session: it sequences memory retrieval, web search,
// prompt assembly, the multimodal generation call, and the memory write,
// exposing a single Talk operation to the caller.
package companion

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/companionlabs/ava-go-sdk/memory"
	"github.com/companionlabs/ava-go-sdk/model"
	"github.com/companionlabs/ava-go-sdk/prompt"
	"github.com/companionlabs/ava-go-sdk/websearch"
)

const assistantName = "Ava"

// ApologyFallback replaces the response when the generation service
// fails. The caller never sees a generation error.
const ApologyFallback = "I'm sorry, I'm having a little trouble understanding that right now. Could we try something else?"

// ErrMemoryWrite marks a failed long-term memory write. It is the one
// fault Talk surfaces: search and generation failures degrade to fixed
// fallback text, but silent memory loss would be worse than a visible
// error. The response text is still returned alongside it.
var ErrMemoryWrite = errors.New("memory write failed")

// Companion is one conversation session. The user's name is captured by
// the caller before construction and is immutable afterwards, so a
// constructed Companion is always in its initialized state; every
// subsequent call is a Talk invocation.
//
// Talk calls on one Companion must be serialized by the caller;
// concurrent calls race on the recency window.
type Companion struct {
	userName  string
	memory    memory.Manager
	search    websearch.Searcher
	generator model.Generator
	window    *Window
}

// Option configures a Companion.
type Option func(*Companion)

// WithWindowSize overrides the recency window capacity.
func WithWindowSize(size int) Option {
	return func(c *Companion) {
		c.window = NewWindow(size)
	}
}

// New creates a session for the named user. The name must be non-empty;
// capturing it is the caller's responsibility and happens before any
// Talk call.
func New(userName string, mem memory.Manager, search websearch.Searcher, gen model.Generator, opts ...Option) (*Companion, error) {
	if userName == "" {
		return nil, errors.New("user name must not be empty")
	}
	if mem == nil || search == nil || gen == nil {
		return nil, errors.New("memory, search and generator are all required")
	}

	c := &Companion{
		userName:  userName,
		memory:    mem,
		search:    search,
		generator: gen,
		window:    NewWindow(DefaultWindowSize),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// UserName returns the name the session was created for.
func (c *Companion) UserName() string {
	return c.userName
}

// History returns a copy of the recency window's turns, oldest first.
func (c *Companion) History() []Turn {
	return c.window.Turns()
}

// Greeting returns the line shown right after name capture.
func (c *Companion) Greeting() string {
	return fmt.Sprintf("It's so great to meet you, %s! 😊 What would you like to talk about?", c.userName)
}

// Talk runs one full conversation turn and returns the response text.
//
// Memory retrieval and web search are independent reads and run as a
// fork-join pair; each branch degrades to its own sentinel on failure,
// so the join itself never fails. A generation failure is logged and
// masked with ApologyFallback. The only error Talk returns wraps
// ErrMemoryWrite, after the turn has otherwise completed — the response
// accompanies it so the caller can still render it.
//
// Callers needing bounded latency should wrap ctx with their own
// timeout; Talk imposes none.
func (c *Companion) Talk(ctx context.Context, userInput string, image, audio *Media) (string, error) {
	var (
		memories  string
		searchCtx string
		wg        sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		memories, err = c.memory.Retrieve(ctx, userInput)
		if err != nil {
			log.Printf("[COMPANION] Memory retrieval failed: %v", err)
			memories = memory.NoRelevantMemories
		}
	}()
	go func() {
		defer wg.Done()
		searchCtx = c.search.Search(ctx, userInput)
	}()
	wg.Wait()

	chatHistory := c.window.Format(c.userName)
	finalInput := prompt.ResolveInput(userInput, image != nil || audio != nil)

	promptText, err := prompt.Render(prompt.Input{
		UserName:         c.userName,
		Memory:           memories,
		ChatHistory:      chatHistory,
		WebSearchResults: searchCtx,
		UserInput:        finalInput,
	})
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}

	parts, err := buildParts(promptText, image, audio)
	if err != nil {
		return "", err
	}

	response, err := c.generator.Generate(ctx, parts)
	if err != nil {
		log.Printf("[COMPANION] Generation failed: %v", err)
		response = ApologyFallback
	}

	c.window.Append(Turn{UserInput: finalInput, Response: response})

	record := fmt.Sprintf("%s: %s\n%s: %s", c.userName, finalInput, assistantName, response)
	if err := c.memory.Remember(ctx, record); err != nil {
		return response, fmt.Errorf("%w: %v", ErrMemoryWrite, err)
	}

	return response, nil
}
