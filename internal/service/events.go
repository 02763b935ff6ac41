package service

import (
	"context"
	"encoding/json"
	"time"

	"cop_forum/internal/pkg"

	"github.com/sirupsen/logrus"
)

// EventPublisher 把领域事件丢给 kafka，纯旁路：
// 发送失败只记日志，绝不影响请求结果。producer 为 nil 时整体为 no-op。
type EventPublisher struct {
	producer *pkg.KafkaProducer
}

func NewEventPublisher(producer *pkg.KafkaProducer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

type forumEvent struct {
	Type     string `json:"type"`
	UserID   uint64 `json:"user_id"`
	TargetID uint64 `json:"target_id"`
	Time     string `json:"time"`
}

func (p *EventPublisher) Publish(ctx context.Context, eventType string, userID, targetID uint64) {
	if p == nil || p.producer == nil {
		return
	}
	payload, _ := json.Marshal(forumEvent{
		Type:     eventType,
		UserID:   userID,
		TargetID: targetID,
		Time:     time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err := p.producer.Send(ctx, pkg.MakeKeyFromID(targetID), payload); err != nil {
		logrus.WithError(err).WithField("type", eventType).Warn("event publish failed")
	}
}
