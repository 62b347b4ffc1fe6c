package appconf

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func EnvFlagToEnvironment(env string) Environment {
	switch env {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Production:
		return "production"
	case Test:
		return "test"
	default:
		return "development"
	}
}
