package translate

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys with count dependent wording.
const (
	MsgOverflow    = "%d instructions exceed the %d word program image"
	MsgPartialWord = "'%v' encoded as %d bits"
	MsgWrote       = "%v: wrote %d words"
	MsgOpcodes     = "%v: %d opcodes"
)

// setCatalog registers the English plural forms.
func setCatalog() {
	set := func(key string, arg int, one, other string) {
		err := message.Set(language.English, key,
			plural.Selectf(arg, "%d",
				"=1", one,
				"other", other))
		if err != nil {
			panic(err)
		}
	}

	set(MsgOverflow, 1,
		"%[1]d instruction exceeds the %[2]d word program image",
		"%[1]d instructions exceed the %[2]d word program image")
	set(MsgWrote, 2,
		"%[1]v: wrote %[2]d word",
		"%[1]v: wrote %[2]d words")
	set(MsgOpcodes, 2,
		"%[1]v: %[2]d opcode",
		"%[1]v: %[2]d opcodes")
	set(MsgPartialWord, 2,
		"'%[1]v' encoded as %[2]d bit",
		"'%[1]v' encoded as %[2]d bits")
}
