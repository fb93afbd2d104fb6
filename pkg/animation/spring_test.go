package animation

import "testing"

func TestSpringSimulation_CriticalDampingDoesNotOvershoot(t *testing.T) {
	sim := NewSpringSimulation(IOSSpring(), -100, 0, 0)
	for i := 0; i < 600; i++ {
		done := sim.Step(1.0 / 60)
		if sim.Position() > 0.5 {
			t.Fatalf("frame %d: position %v overshot target", i, sim.Position())
		}
		if done {
			if sim.Position() != 0 || sim.Velocity() != 0 {
				t.Fatalf("at rest: position %v velocity %v", sim.Position(), sim.Velocity())
			}
			return
		}
	}
	t.Fatal("spring did not come to rest")
}

func TestSpringSimulation_SetTarget(t *testing.T) {
	sim := NewSpringSimulation(IOSSpring(), 0, 0, 0)
	sim.SetTarget(-64)
	if sim.Target() != -64 {
		t.Fatalf("Target() = %v", sim.Target())
	}
	for i := 0; i < 600 && !sim.Step(1.0/60); i++ {
	}
	if sim.Position() != -64 {
		t.Errorf("Position() = %v, want -64", sim.Position())
	}
}
