package operator

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-reconciler/internal/operator/actions"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	service *service.Service
	log     logrus.FieldLogger
	queue   chan ActionItem
}

func NewOperator(svc *service.Service, log logrus.FieldLogger, queue chan ActionItem) *Operator {
	return &Operator{
		service: svc,
		log:     log,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	// The caller may have given up while the item waited in the queue.
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err := item.action.Perform(item.ctx, o.service)
	if err != nil {
		o.log.WithFields(service.ErrorFields(err)).
			WithField("action", fmt.Sprintf("%T", item.action)).
			WithError(err).
			Warn("Operator.processItem.actionFailed")
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
