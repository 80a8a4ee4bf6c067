package main

import (
	"github.com/maxwsy/leetcode-report/cmd/app"
)

func main() {
	app.Run()
}
