package main

import (
	"github.com/urfave/cli"
)

func configure(app *cli.App) {
	serveCMD := makeServeCMD()
	movieCMD := makeMovieCMD()
	app.Commands = []cli.Command{serveCMD, movieCMD}
}
