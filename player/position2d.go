package player

import (
	"context"

	"github.com/pkg/errors"
)

type position2d struct {
	client     *client
	index      int
	subscribed bool
	pose       Pose
	fresh      bool
}

func (p *position2d) Index() int {
	return p.index
}

func (p *position2d) Subscribe(ctx context.Context, access AccessMode) error {
	if err := p.client.subscribe(ctx, InterfacePosition2d, p.index, access); err != nil {
		return err
	}
	p.subscribed = true
	p.fresh = false
	return nil
}

func (p *position2d) Unsubscribe(ctx context.Context) error {
	if !p.subscribed {
		return nil
	}
	p.subscribed = false
	return p.client.unsubscribe(ctx, InterfacePosition2d, p.index)
}

func (p *position2d) Pose() (Pose, error) {
	if !p.subscribed {
		return Pose{}, errors.Wrapf(ErrNotSubscribed, "%s:%d", InterfacePosition2d, p.index)
	}
	if !p.fresh {
		return Pose{}, errors.Wrapf(ErrNoData, "%s:%d", InterfacePosition2d, p.index)
	}
	if err := p.pose.Validate(); err != nil {
		return Pose{}, errors.Wrapf(err, "%s:%d", InterfacePosition2d, p.index)
	}
	return p.pose, nil
}

func (p *position2d) SetCmdVel(ctx context.Context, cmd VelocityCommand) error {
	_, err := p.client.call(ctx, "setCmdVel", p.index, cmd.Linear, cmd.Lateral, cmd.Angular, cmd.Immediate)
	return errors.Wrapf(err, "set velocity on %s:%d", InterfacePosition2d, p.index)
}

func (p *position2d) SetMotorEnable(ctx context.Context, enable bool) error {
	_, err := p.client.call(ctx, "setMotorEnable", p.index, enable)
	return errors.Wrapf(err, "enable motors on %s:%d", InterfacePosition2d, p.index)
}

func (p *position2d) SetOdometry(ctx context.Context, pose Pose) error {
	if err := pose.Validate(); err != nil {
		return err
	}
	_, err := p.client.call(ctx, "setOdometry", p.index, pose.X, pose.Y, pose.Theta)
	return errors.Wrapf(err, "set odometry on %s:%d", InterfacePosition2d, p.index)
}
