package cmds

import (
	"fmt"
	"maps"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/reusee/aide/vars"
)

// Executor holds the verb table. Executing a command that carries
// sub-commands splices them into the table for the remaining arguments.
type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	executor := &Executor{
		commands: make(map[string]*Command),
	}
	executor.Define("-h", Func(func() {
		executor.PrintUsage()
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help"))
	return executor
}

func (e *Executor) Define(name string, command *Command) {
	for _, n := range append([]string{name}, command.Aliases...) {
		if _, ok := e.commands[n]; ok {
			panic(fmt.Errorf("duplicated command %s", n))
		}
		e.commands[n] = command
	}
}

func (e *Executor) Execute(args []string) error {
	commands := e.commands

	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := commands[name]
		if !ok {
			return fmt.Errorf("unknown command: %s", name)
		}

		if command.Func.IsValid() {
			var err error
			args, err = invoke(command.Func, args)
			if err != nil {
				return err
			}
		}

		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subName, sub := range command.Subs {
				if _, ok := commands[subName]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subName)
				}
				commands[subName] = sub
			}
		}
	}

	return nil
}

func (e *Executor) MustExecute(args []string) {
	if err := e.Execute(args); err != nil {
		panic(err)
	}
}

// invoke calls fn with arguments parsed from args, one token per
// parameter, and returns the arguments left over.
func invoke(fn reflect.Value, args []string) ([]string, error) {
	fnType := fn.Type()
	callArgs := make([]reflect.Value, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		value, err := parseArg(fnType.In(i), args)
		if err != nil {
			return args, err
		}
		if len(args) > 0 {
			args = args[1:]
		}
		callArgs = append(callArgs, value)
	}
	rets := fn.Call(callArgs)
	if len(rets) == 1 && !rets[0].IsNil() {
		return args, rets[0].Interface().(error)
	}
	return args, nil
}

// parseArg converts the head of args to type t. A pointer type marks
// the parameter optional: with no arguments left it parses to a pointer
// to the zero value instead of failing.
func parseArg(t reflect.Type, args []string) (reflect.Value, error) {
	if t.Kind() == reflect.Pointer {
		if len(args) == 0 {
			return reflect.New(t.Elem()), nil
		}
		elem, err := parseArg(t.Elem(), args)
		if err != nil {
			return reflect.Value{}, err
		}
		return elem.Addr(), nil
	}

	if len(args) == 0 {
		return reflect.Value{}, fmt.Errorf("expecting argument, got nothing")
	}
	str := args[0]

	value := reflect.New(t).Elem()
	switch t.Kind() {

	case reflect.String:
		value.SetString(str)

	case reflect.Bool:
		value.SetBool(vars.StrToBool(str))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("convert %s to int: %w", str, err)
		}
		value.SetInt(i)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(str, 10, 64)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		value.SetUint(u)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("convert %s to float: %w", str, err)
		}
		value.SetFloat(f)

	default:
		return reflect.Value{}, fmt.Errorf("unsupported type: %v", t)
	}

	return value, nil
}
