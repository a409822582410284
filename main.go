package main

import "github.com/junaidrashid-git/storefront-api/cli"

func main() {
	cli.Execute()
}
