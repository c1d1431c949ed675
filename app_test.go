package tidefall

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func NewMockResource1(name string) *MockResource1 {
	return &MockResource1{name: name}
}
func NewMockResource2(name string) *MockResource2 {
	return &MockResource2{name: name}
}

func TestApp_AddResources(t *testing.T) {
	app := NewAppBuilder().Build()

	resource1 := NewMockResource1("Resource1")
	app.AddResources(resource1)

	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem(), "Resource1 should be in resources map.")

	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.AddResources(resource1)
	})

	resource2 := NewMockResource2("Resource2")
	app.AddResources(resource2)

	assert.Contains(t, app.resources, reflect.TypeOf(resource2).Elem(), "Resource2 should be in resources map.")
}

func TestApp_Resource(t *testing.T) {
	app := NewAppBuilder().Build()
	app.AddResources(NewMockResource1("first"))

	var got *MockResource1
	require.True(t, app.Resource(&got))
	assert.Equal(t, "first", got.name)

	var missing *MockResource2
	assert.False(t, app.Resource(&missing))
}

func TestApp_SystemInjection(t *testing.T) {
	app := NewAppBuilder().Build()
	app.AddResources(NewMockResource1("injected"))

	var seen string
	app.UseSystem(System(func(r *MockResource1) {
		seen = r.name
	}))

	app.Step()

	assert.Equal(t, "injected", seen)
}

func TestApp_StageOrder(t *testing.T) {
	app := NewAppBuilder().Build()
	app.AddResources(NewMockResource1("order"))

	var order []string
	app.UseSystem(System(func(r *MockResource1) {
		order = append(order, "render")
	}).InStage(Render))
	app.UseSystem(System(func(r *MockResource1) {
		order = append(order, "update")
	}))

	app.Step()

	assert.Equal(t, []string{"update", "render"}, order)
}

func TestApp_UnresolvableDependencyPanics(t *testing.T) {
	app := NewAppBuilder().Build()
	app.UseSystem(System(func(r *MockResource2) {}))

	assert.Panics(t, func() { app.Step() })
}

func TestApp_RunStopsOnQuit(t *testing.T) {
	app := NewAppBuilder().Build()

	frames := 0
	app.AddResources(&RunControl{})
	app.UseSystem(System(func(ctl *RunControl) {
		frames++
		if frames >= 3 {
			ctl.Quit = true
		}
	}))

	app.Run()

	assert.Equal(t, 3, frames)
}
