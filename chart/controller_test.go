package chart

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/novatechnologies/chartview/engine"
	"bitbucket.org/novatechnologies/chartview/engine/enginetest"
)

func TestController_Mount(t *testing.T) {
	fake := enginetest.NewFake()
	container := enginetest.NewContainer(800)
	controller := NewController(fake)

	require.NoError(t, controller.Mount(container))

	assert.Equal(t, 1, fake.CreateCalls)
	assert.Equal(t, 800, fake.Options.Width)
	assert.Equal(t, chartHeight, fake.Options.Height)
	assert.True(t, fake.Options.CrosshairEnabled)
	assert.NotNil(t, fake.Options.TickFormatter)
	assert.Equal(t, upColor, fake.SeriesOpts.UpColor)
	assert.Equal(t, downColor, fake.SeriesOpts.DownColor)
	assert.Equal(t, 1, fake.Subscribers())
	assert.Equal(t, 1, container.Subscribers())
}

func TestController_Mount_NilContainer(t *testing.T) {
	fake := enginetest.NewFake()
	controller := NewController(fake)

	require.NoError(t, controller.Mount(nil))

	assert.Zero(t, fake.CreateCalls)
	assert.False(t, controller.ViewState().HasData)
}

func TestController_Mount_DetachedContainer(t *testing.T) {
	fake := enginetest.NewFake()
	container := enginetest.NewContainer(800)
	container.Detached = true
	controller := NewController(fake)

	require.NoError(t, controller.Mount(container))

	assert.Zero(t, fake.CreateCalls)
	assert.Zero(t, container.Subscribers())
}

func TestController_Mount_EngineError(t *testing.T) {
	fake := enginetest.NewFake()
	fake.CreateErr = errors.New("renderer exploded")
	container := enginetest.NewContainer(800)
	controller := NewController(fake)

	err := controller.Mount(container)

	require.EqualError(t, err, "renderer exploded")
	// A failed mount must not leave a dangling observer behind.
	assert.Zero(t, container.Subscribers())
	assert.Zero(t, fake.Subscribers())
}

func TestController_Mount_Twice(t *testing.T) {
	fake := enginetest.NewFake()
	container := enginetest.NewContainer(800)
	controller := NewController(fake)

	require.NoError(t, controller.Mount(container))
	require.NoError(t, controller.Mount(container))

	assert.Equal(t, 1, fake.CreateCalls)
	assert.Equal(t, 1, container.Subscribers())
}

func TestController_Resize_AppliesWidthOnly(t *testing.T) {
	fake := enginetest.NewFake()
	container := enginetest.NewContainer(800)
	controller := NewController(fake)
	require.NoError(t, controller.Mount(container))

	container.Resize(engine.Size{Width: 1024, Height: 999})

	require.Len(t, fake.AppliedOptions, 1)
	require.NotNil(t, fake.AppliedOptions[0].Width)
	assert.Equal(t, 1024, *fake.AppliedOptions[0].Width)
}

func TestController_Unmount(t *testing.T) {
	fake := enginetest.NewFake()
	container := enginetest.NewContainer(800)
	controller := NewController(fake)
	require.NoError(t, controller.Mount(container))

	controller.Unmount()

	assert.Equal(t, 1, fake.RemoveCalls)
	assert.Zero(t, fake.Subscribers())
	assert.Zero(t, container.Subscribers())
	assert.False(t, controller.ViewState().HasData)

	// No stimulus may reach the engine after teardown.
	container.Resize(engine.Size{Width: 500})
	assert.Empty(t, fake.AppliedOptions)
}

func TestController_Unmount_NeverMounted(t *testing.T) {
	controller := NewController(enginetest.NewFake())

	controller.Unmount()
	controller.Unmount()
}

func TestController_Unmount_Twice(t *testing.T) {
	fake := enginetest.NewFake()
	container := enginetest.NewContainer(800)
	controller := NewController(fake)
	require.NoError(t, controller.Mount(container))

	controller.Unmount()
	controller.Unmount()

	assert.Equal(t, 1, fake.RemoveCalls)
}
