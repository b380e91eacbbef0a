package main

import (
	"errors"
	"strconv"
	"strings"
)

type command string

const (
	cmdGet   command = "g"
	cmdNew   command = "n"
	cmdOpen  command = "o"
	cmdFlag  command = "f"
	cmdChord command = "c"
	cmdSave  command = "s"
	cmdWrite command = "w"
	cmdDrop  command = "d"
	cmdLoad  command = "l"
	cmdSlots command = "ls"
	cmdQuit  command = "q"
)

// Maps known commands to number of arguments
var commandNargs = map[command]int{
	cmdGet:   0,
	cmdNew:   1,
	cmdOpen:  2,
	cmdFlag:  2,
	cmdChord: 2,
	cmdSave:  1,
	cmdWrite: 1,
	cmdDrop:  1,
	cmdLoad:  1,
	cmdSlots: 0,
	cmdQuit:  0,
}

var (
	errUnknownCommand = errors.New("unknown command")
	errNargs          = errors.New("invalid number of arguments")
)

func parseCommand(line string) (cmd command, args []string, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, errUnknownCommand
	}
	cmd, args = command(fields[0]), fields[1:]
	nargs, ok := commandNargs[cmd]
	if !ok {
		return "", nil, errUnknownCommand
	}
	if nargs != len(args) {
		return "", nil, errNargs
	}
	return cmd, args, nil
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}
