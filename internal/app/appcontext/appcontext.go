package appcontext

const (
	// EnvLambda is a long-running AWS Lambda runtime loop.
	EnvLambda Env = iota
	// EnvCLI is a single local invocation.
	EnvCLI
)

type Env int

type Ctx struct {
	Env Env
}

func Declare(env Env) Ctx {
	return Ctx{
		Env: env,
	}
}

func (c Ctx) IsLambda() bool {
	return c.Env == EnvLambda
}
