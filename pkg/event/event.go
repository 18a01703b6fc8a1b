// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Event types published by the game
const (
	GameStarted       Type = "game_started"
	AsteroidDestroyed Type = "asteroid_destroyed"
	ShipDestroyed     Type = "ship_destroyed"
	BulletFired       Type = "bullet_fired"
	SceneChanged      Type = "scene_changed"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// SubscriptionID identifies a handler registration so it can be removed later.
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler Handler
}

// Bus dispatches events synchronously to subscribers, in subscription order.
type Bus struct {
	handlers map[Type][]subscription
	nextID   SubscriptionID
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscription),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) SubscriptionID {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})
	return id
}

// Unsubscribe removes the handler registered under id. Unknown ids are ignored.
func (b *Bus) Unsubscribe(eventType Type, id SubscriptionID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// AsteroidEvent reports an asteroid destroyed by a bullet.
type AsteroidEvent struct {
	BaseEvent
	AsteroidID uint64
	Tier       int
	X, Y       float64
	Fragments  int
}

// NewAsteroidEvent creates a new asteroid event
func NewAsteroidEvent(source interface{}, asteroidID uint64, tier int, x, y float64, fragments int) *AsteroidEvent {
	return &AsteroidEvent{
		BaseEvent: BaseEvent{
			EventType: AsteroidDestroyed,
			Source:    source,
		},
		AsteroidID: asteroidID,
		Tier:       tier,
		X:          x,
		Y:          y,
		Fragments:  fragments,
	}
}

// ShipEvent contains information about ship-related events
type ShipEvent struct {
	BaseEvent
	ShipID uint64
	Score  int
}

// NewShipEvent creates a new ship event
func NewShipEvent(eventType Type, source interface{}, shipID uint64, score int) *ShipEvent {
	return &ShipEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		ShipID: shipID,
		Score:  score,
	}
}

// SceneEvent reports a scene transition.
type SceneEvent struct {
	BaseEvent
	From string
	To   string
}

// NewSceneEvent creates a new scene event
func NewSceneEvent(source interface{}, from, to string) *SceneEvent {
	return &SceneEvent{
		BaseEvent: BaseEvent{
			EventType: SceneChanged,
			Source:    source,
		},
		From: from,
		To:   to,
	}
}
