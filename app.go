package tidefall

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

// App drives the frame loop. Systems are plain functions whose pointer
// arguments are resolved from the resource registry by type; modules
// install resources and schedule systems into stages.
type App struct {
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
}

// RunControl lets any system stop the loop.
type RunControl struct {
	Quit bool
}

// Run steps frames until a system sets RunControl.Quit.
func (app *App) Run() {
	ctl := &RunControl{}
	if existing, ok := app.resources[reflect.TypeOf(RunControl{})]; ok {
		ctl = existing.(*RunControl)
	} else {
		app.AddResources(ctl)
	}

	for !ctl.Quit {
		app.Step()
	}
}

// Step executes every scheduled system once, in stage order.
func (app *App) Step() {
	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			app.callSystem(system)
		}
	}
}

// AddResources registers each value under its concrete type. Resources
// must be pointers and each type may be registered once.
func (app *App) AddResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if resourceType.Kind() != reflect.Ptr {
			panic(fmt.Sprintf("resource %s must be a pointer", resourceType))
		}
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}
		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// Resource returns the registered value for the pointed-to type of out,
// or false when nothing of that type was added.
func (app *App) Resource(out any) bool {
	outVal := reflect.ValueOf(out)
	if outVal.Kind() != reflect.Ptr || outVal.Elem().Kind() != reflect.Ptr {
		panic("Resource expects a pointer to a resource pointer")
	}
	resource, ok := app.resources[outVal.Type().Elem().Elem()]
	if !ok {
		return false
	}
	outVal.Elem().Set(reflect.ValueOf(resource))
	return true
}

func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		underlyingType := argType.Elem()

		if resource, ok := app.resources[underlyingType]; ok {
			args[i] = reflect.ValueOf(resource)
		} else {
			msg := fmt.Sprintf("Unable to resolve system dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
				runtime.FuncForPC(systemValue.Pointer()).Name(),
				fmt.Sprint(systemType),
				fmt.Sprint(argType),
			)
			panic(msg)
		}
	}
	systemValue.Call(args)
}
