package tidefall

import "testing"

type MockModule struct {
	installed bool
}

func (m *MockModule) Install(app *App) {
	m.installed = true
}

func TestAppBuilder_DefaultStages(t *testing.T) {
	app := NewAppBuilder().Build()

	if len(app.stages) != 6 {
		t.Errorf("Expected 6 default stages, got %v", len(app.stages))
	}
	if app.stages[0].Name != PreUpdate.Name {
		t.Errorf("Expected first stage to be PreUpdate, got %v", app.stages[0].Name)
	}
	if app.stages[len(app.stages)-1].Name != PostRender.Name {
		t.Errorf("Expected last stage to be PostRender, got %v", app.stages[len(app.stages)-1].Name)
	}
}

func TestAppBuilder_UseModule(t *testing.T) {
	builder := NewAppBuilder()
	mockModule := &MockModule{}
	builder.UseModule(mockModule)

	if len(builder.modules) != 1 {
		t.Errorf("Expected modules to contain 1 module, got %v", len(builder.modules))
	}
}

func TestAppBuilder_Build_WithModules(t *testing.T) {
	builder := NewAppBuilder()
	module := &MockModule{}
	builder.UseModule(module)

	builder.Build()

	if !module.installed {
		t.Errorf("Expected Install to be called on the module, but it was not")
	}
}

func TestAppBuilder_Build_WithMultipleModules(t *testing.T) {
	module1 := &MockModule{}
	module2 := &MockModule{}

	builder := NewAppBuilder()
	builder.UseModule(module1)
	builder.UseModule(module2)

	builder.Build()

	if !module1.installed {
		t.Errorf("Expected Install to be called on the module 1, but it was not")
	}
	if !module2.installed {
		t.Errorf("Expected Install to be called on the module 2, but it was not")
	}
}
