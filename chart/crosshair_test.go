package chart

import (
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/novatechnologies/chartview/engine"
)

func TestCrosshair_TracksPointer(t *testing.T) {
	controller, fake := mountedController(t)
	controller.SetCandles("BTC-USDT", twoDayCandles())

	fake.EmitPointer(engine.PointerEvent{
		Time:  pointer.ToInt64(1700000000),
		Point: &engine.Point{X: 213.5, Y: 88},
	})

	view := controller.ViewState()
	require.NotNil(t, view.CrosshairTime)
	require.NotNil(t, view.CrosshairX)
	assert.Equal(t, "Nov 14, 2023 10:13 PM", *view.CrosshairTime)
	assert.Equal(t, 213.5, *view.CrosshairX)
}

func TestCrosshair_ClearedWithoutPoint(t *testing.T) {
	controller, fake := mountedController(t)
	fake.EmitPointer(engine.PointerEvent{
		Time:  pointer.ToInt64(1700000000),
		Point: &engine.Point{X: 10},
	})

	fake.EmitPointer(engine.PointerEvent{Time: pointer.ToInt64(1700000000)})

	view := controller.ViewState()
	assert.Nil(t, view.CrosshairTime)
	assert.Nil(t, view.CrosshairX)
}

func TestCrosshair_ClearedWithoutTime(t *testing.T) {
	controller, fake := mountedController(t)
	fake.EmitPointer(engine.PointerEvent{
		Time:  pointer.ToInt64(1700000000),
		Point: &engine.Point{X: 10},
	})

	fake.EmitPointer(engine.PointerEvent{Point: &engine.Point{X: 44}})

	view := controller.ViewState()
	assert.Nil(t, view.CrosshairTime)
	assert.Nil(t, view.CrosshairX)
}

func TestCrosshair_NoDeliveryAfterUnmount(t *testing.T) {
	controller, fake := mountedController(t)
	controller.Unmount()

	assert.Zero(t, fake.Subscribers())

	fake.EmitPointer(engine.PointerEvent{
		Time:  pointer.ToInt64(1700000000),
		Point: &engine.Point{X: 10},
	})

	view := controller.ViewState()
	assert.Nil(t, view.CrosshairTime)
	assert.Nil(t, view.CrosshairX)
}
