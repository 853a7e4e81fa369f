package main

import "github.com/JavierMedel/culinairy-webapp/cmd"

func main() {
	cmd.Execute()
}
