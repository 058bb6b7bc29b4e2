package execshell

import "strings"

const (
	jvmExtendedOptionPrefixConstant = "-X"
)

// MergeJavaOptions flattens the supplied option lists while de-duplicating
// JVM -X options by their leading alphabetic symbol, keeping the first
// occurrence. Exact duplicates are dropped; all other options pass through in
// order. "-Xmx2g" followed by "-Xmx4g" therefore keeps only "-Xmx2g".
func MergeJavaOptions(optionLists ...[]string) []string {
	mergedOptions := []string{}
	seenOptions := map[string]struct{}{}
	seenExtendedSymbols := map[string]struct{}{}

	for _, optionList := range optionLists {
		for _, candidateOption := range optionList {
			trimmedOption := strings.TrimSpace(candidateOption)
			if len(trimmedOption) == 0 {
				continue
			}
			if _, duplicate := seenOptions[trimmedOption]; duplicate {
				continue
			}
			if strings.HasPrefix(trimmedOption, jvmExtendedOptionPrefixConstant) {
				optionSymbol := extractExtendedOptionSymbol(trimmedOption)
				if len(optionSymbol) > 0 {
					if _, symbolTaken := seenExtendedSymbols[optionSymbol]; symbolTaken {
						continue
					}
					seenExtendedSymbols[optionSymbol] = struct{}{}
				}
			}
			seenOptions[trimmedOption] = struct{}{}
			mergedOptions = append(mergedOptions, trimmedOption)
		}
	}

	return mergedOptions
}

// extractExtendedOptionSymbol returns the leading alphabetic run after "-X",
// so "-Xmx2g" yields "mx" and "-Xms512m" yields "ms".
func extractExtendedOptionSymbol(option string) string {
	remainder := strings.TrimPrefix(option, jvmExtendedOptionPrefixConstant)
	symbolLength := 0
	for symbolLength < len(remainder) {
		character := remainder[symbolLength]
		isLowercase := character >= 'a' && character <= 'z'
		isUppercase := character >= 'A' && character <= 'Z'
		if !isLowercase && !isUppercase {
			break
		}
		symbolLength++
	}
	return remainder[:symbolLength]
}
