package player

import (
	"context"

	"github.com/pkg/errors"
)

type laser struct {
	client     *client
	index      int
	subscribed bool
	scan       Scan
	fresh      bool
}

func (l *laser) Index() int {
	return l.index
}

func (l *laser) Subscribe(ctx context.Context, access AccessMode) error {
	if err := l.client.subscribe(ctx, InterfaceLaser, l.index, access); err != nil {
		return err
	}
	l.subscribed = true
	l.fresh = false
	return nil
}

func (l *laser) Unsubscribe(ctx context.Context) error {
	if !l.subscribed {
		return nil
	}
	l.subscribed = false
	return l.client.unsubscribe(ctx, InterfaceLaser, l.index)
}

func (l *laser) Scan() (Scan, error) {
	if !l.subscribed {
		return Scan{}, errors.Wrapf(ErrNotSubscribed, "%s:%d", InterfaceLaser, l.index)
	}
	if !l.fresh {
		return Scan{}, errors.Wrapf(ErrNoData, "%s:%d", InterfaceLaser, l.index)
	}
	return l.scan, nil
}
