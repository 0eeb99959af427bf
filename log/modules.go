package log

import (
	"io"
	"sort"

	"gopkg.in/Sirupsen/logrus.v0"
)

type ModuleMask uint64
type Module uint

const (
	ModuleMaskAll ModuleMask = 0xFFFFFFFFFFFFFFFF
)

const (
	ModROM Module = iota + 1
	ModCombine
	ModSplit
	ModInfos
	ModCLI

	endStandardMods
)

var modNames = []string{
	"<error>", "rom", "combine", "split", "infos", "cli",
}

var (
	modDebugMask ModuleMask = 0
	disabled     bool
)

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(logrus.DebugLevel)
}

func ModuleByName(name string) (Module, bool) {
	for idx, s := range modNames {
		if idx != 0 && s == name {
			return Module(idx), true
		}
	}
	return Module(0xFFFFFFFF), false
}

// ModuleNames returns the sorted list of module names accepted by
// ModuleByName.
func ModuleNames() []string {
	names := append([]string(nil), modNames[1:endStandardMods]...)
	sort.Strings(names)
	return names
}

func EnableDebugModules(mask ModuleMask) {
	modDebugMask |= mask
}

func DisableDebugModules(mask ModuleMask) {
	modDebugMask &^= mask
}

// Disable turns off all logging, warnings and errors included.
func Disable() { disabled = true }

// Enable reverts a previous call to Disable.
func Enable() { disabled = false }

// SetOutput redirects all log output to w.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

func (mod Module) String() string {
	if int(mod) < len(modNames) {
		return modNames[mod]
	}
	return modNames[0]
}

func (mod Module) Mask() ModuleMask {
	return 1 << ModuleMask(mod)
}

func (mod Module) Enabled(level Level) bool {
	if disabled {
		return false
	}
	return level <= WarnLevel || modDebugMask&mod.Mask() != 0
}

// Implement the logging interface directly on modules

func (mod Module) WithFields(fields Fields) Entry {
	return Entry{mod: mod}.WithFields(fields)
}

func (mod Module) WithField(key string, value any) Entry {
	return Entry{mod: mod}.WithField(key, value)
}

func (mod Module) WithError(err error) Entry {
	return Entry{mod: mod}.WithError(err)
}

func (mod Module) Debug(args ...any) { Entry{mod: mod}.Debug(args...) }
func (mod Module) Info(args ...any)  { Entry{mod: mod}.Info(args...) }
func (mod Module) Warn(args ...any)  { Entry{mod: mod}.Warn(args...) }
func (mod Module) Error(args ...any) { Entry{mod: mod}.Error(args...) }

// printf-like family

func (mod Module) Debugf(format string, args ...any) {
	Entry{mod: mod}.Debugf(format, args...)
}

func (mod Module) Infof(format string, args ...any) {
	Entry{mod: mod}.Infof(format, args...)
}

func (mod Module) Warnf(format string, args ...any) {
	Entry{mod: mod}.Warnf(format, args...)
}

func (mod Module) Errorf(format string, args ...any) {
	Entry{mod: mod}.Errorf(format, args...)
}
