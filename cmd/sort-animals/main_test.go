package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestSortAnimalsWithoutFlags(t *testing.T) {
	is, path := setupTest(t, "animals.json", dogAndCatJSON)

	stdout, _, err := execute(path)
	is.NoErr(err)
	is.Equal(stdout, dogThenCat+"\n")
}

func TestSortAnimalsByColor(t *testing.T) {
	is, path := setupTest(t, "animals.json", dogAndCatJSON)

	stdout, _, err := execute("--color", path)
	is.NoErr(err)
	is.Equal(stdout, catThenDog+"\n")
}

func TestSortAnimalsByColorReversed(t *testing.T) {
	is, path := setupTest(t, "animals.json", dogAndCatJSON)

	stdout, _, err := execute("-c", "-r", path)
	is.NoErr(err)
	is.Equal(stdout, dogThenCat+"\n")
}

func TestCombinedShortFlags(t *testing.T) {
	is, path := setupTest(t, "animals.json", dogAndCatJSON)

	stdout, _, err := execute("-wr", path)
	is.NoErr(err)
	is.Equal(stdout, catThenDog+"\n")
}

func TestElephantsAreDropped(t *testing.T) {
	is, path := setupTest(t, "animals.json", `[{"type":"elephant","weight":5000,"color":"gray"},{"type":"dog","weight":17,"color":"white"}]`)

	stdout, _, err := execute(path)
	is.NoErr(err)
	is.Equal(stdout, "[\n  {\n    \"type\": \"dog\",\n    \"weight\": 17,\n    \"color\": \"white\"\n  }\n]\n")
}

func TestYAMLInputIsDetectedFromExtension(t *testing.T) {
	is, path := setupTest(t, "animals.yaml", "- type: dog\n  weight: 17\n  color: white\n- type: cat\n  weight: 30\n  color: black\n")

	stdout, _, err := execute(path)
	is.NoErr(err)
	is.Equal(stdout, dogThenCat+"\n")
}

func TestYAMLOutput(t *testing.T) {
	is, path := setupTest(t, "animals.json", dogAndCatJSON)

	stdout, _, err := execute("--output", "yaml", "--color", path)
	is.NoErr(err)
	is.Equal(stdout, "- type: cat\n  weight: 30\n  color: black\n- type: dog\n  weight: 17\n  color: white\n")
}

func TestMissingFileIsAnError(t *testing.T) {
	is := is.New(t)

	stdout, stderr, err := execute(filepath.Join(t.TempDir(), "nosuchfile.json"))
	is.True(err != nil)
	is.Equal(stdout, "") // no partial output
	is.True(strings.Contains(stderr, "could not read file"))
}

func TestMalformedFileIsAnError(t *testing.T) {
	is, path := setupTest(t, "animals.json", `{"type":"dog"}`)

	stdout, _, err := execute(path)
	is.True(err != nil)
	is.Equal(stdout, "")
}

func TestUnsupportedOutputFormatIsAnError(t *testing.T) {
	is, path := setupTest(t, "animals.json", dogAndCatJSON)

	_, _, err := execute("-o", "xml", path)
	is.True(err != nil)
}

func TestPathIsRequired(t *testing.T) {
	is := is.New(t)

	_, _, err := execute("--color")
	is.True(err != nil)
}

func execute(args ...string) (string, string, error) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd := newRootCmd(context.Background(), stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func setupTest(t *testing.T, name, content string) (*is.I, string) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), name)
	is.NoErr(os.WriteFile(path, []byte(content), 0o600))

	return is, path
}

const dogAndCatJSON string = `[{"type": "dog", "weight": 17, "color": "white"}, {"type": "cat", "weight": 30, "color": "black"}]`

const dogThenCat string = `[
  {
    "type": "dog",
    "weight": 17,
    "color": "white"
  },
  {
    "type": "cat",
    "weight": 30,
    "color": "black"
  }
]`

const catThenDog string = `[
  {
    "type": "cat",
    "weight": 30,
    "color": "black"
  },
  {
    "type": "dog",
    "weight": 17,
    "color": "white"
  }
]`
