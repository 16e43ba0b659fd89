package mocks

import (
	"sync"

	"github.com/pdf/golednet/common"
)

// SubscriptionTarget provides a working subscription implementation for
// embedding in mocks, so tests can exercise events without stubbing the
// subscription plumbing
type SubscriptionTarget struct {
	subscriptions map[string]*common.Subscription
	sync.Mutex
}

func (_m *SubscriptionTarget) NewSubscription() (*common.Subscription, error) {
	sub := common.NewSubscription(_m)
	_m.Lock()
	if _m.subscriptions == nil {
		_m.subscriptions = make(map[string]*common.Subscription)
	}
	_m.subscriptions[sub.ID()] = sub
	_m.Unlock()
	return sub, nil
}

func (_m *SubscriptionTarget) CloseSubscription(sub *common.Subscription) error {
	_m.Lock()
	defer _m.Unlock()
	if _, ok := _m.subscriptions[sub.ID()]; !ok {
		return common.ErrNotFound
	}
	delete(_m.subscriptions, sub.ID())
	return nil
}

// Publish pushes an event to all subscribers
func (_m *SubscriptionTarget) Publish(event interface{}) {
	_m.Lock()
	subs := make([]*common.Subscription, 0, len(_m.subscriptions))
	for _, sub := range _m.subscriptions {
		subs = append(subs, sub)
	}
	_m.Unlock()

	for _, sub := range subs {
		_ = sub.Write(event)
	}
}
