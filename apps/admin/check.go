package main

import "fmt"

// check loads the fixture and prints how many of each entity it holds.
func (cli *commandLine) check(fixture string) error {
	_, res, err := cli.load(fixture)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "parcours: %d\nue: %d\netudiants: %d\n", res.Parcours, res.UE, res.Etudiants)
	return nil
}
