package initchecker

import "fmt"

func CheckInit(pairs ...any) {
	if len(pairs)%2 != 0 {
		panic("CheckInit: nombre d'arguments impair")
	}
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic("CheckInit: le premier élément de chaque paire doit être un nom")
		}
		value := pairs[i+1]
		if value == nil {
			panic(fmt.Sprintf("dépendance %s non initialisée", name))
		}
	}
}
