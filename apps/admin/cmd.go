package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	dummydb "github.com/trezcool/scolarite/storage/database/dummy"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	out      io.Writer
	openFile func(name string) (io.ReadCloser, error) // mockable
}

func openFile(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  check -fixture FILE - load a seed fixture and report what it contains")
	fmt.Fprintln(cli.out, "  export -fixture FILE [-parcours ID] - print the students of a seed fixture as JSON")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	checkCmd := flag.NewFlagSet("check", flag.ContinueOnError)
	checkCmd.SetOutput(cli.out)
	checkFixture := checkCmd.String("fixture", "", "Path to the JSON seed fixture.")

	exportCmd := flag.NewFlagSet("export", flag.ContinueOnError)
	exportCmd.SetOutput(cli.out)
	exportFixture := exportCmd.String("fixture", "", "Path to the JSON seed fixture.")
	exportParcours := exportCmd.Int("parcours", 0, "Only export students following this Parcours (registry ID).")

	switch args[1] {
	case "check":
		if err := checkCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *checkFixture == "" {
			checkCmd.Usage()
			return errHelp
		}
		return cli.check(*checkFixture)
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *exportFixture == "" {
			exportCmd.Usage()
			return errHelp
		}
		return cli.export(*exportFixture, *exportParcours)
	default:
		cli.printUsage()
		return errHelp
	}
}

// load seeds a fresh registry from the fixture file.
func (cli *commandLine) load(fixture string) (*dummydb.DB, dummydb.SeedResult, error) {
	f, err := cli.openFile(fixture)
	if err != nil {
		return nil, dummydb.SeedResult{}, err
	}
	defer f.Close()

	db, err := dummydb.Open()
	if err != nil {
		return nil, dummydb.SeedResult{}, err
	}
	res, err := dummydb.Seed(db, f)
	if err != nil {
		return nil, res, err
	}
	return db, res, nil
}
