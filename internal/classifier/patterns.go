package classifier

// DefaultPatterns returns the built-in pattern table.
// English keywords per domain, followed by transliterated Hindi and
// Marathi variants of the same concepts. Single-word entries that are
// also common English words carry explicit boundaries on both sides.
func DefaultPatterns() []Pattern {
	return []Pattern{
		// Constitutional law
		{Expr: `\bconstitution(al)?\b`, Domain: DomainConstitutional},
		{Expr: `\bfundamental rights?\b`, Domain: DomainConstitutional},
		{Expr: `\barticle \d+\b`, Domain: DomainConstitutional},
		{Expr: `\bamendment\b`, Domain: DomainConstitutional},
		{Expr: `\bpreamble\b`, Domain: DomainConstitutional},
		{Expr: `\bdirective principles?\b`, Domain: DomainConstitutional},
		{Expr: `\bsupreme court\b`, Domain: DomainConstitutional},
		{Expr: `\bhigh court\b`, Domain: DomainConstitutional},
		{Expr: `\bwrit petition\b`, Domain: DomainConstitutional},
		{Expr: `\bhabeas corpus\b`, Domain: DomainConstitutional},
		{Expr: `\bpublic interest litigation\b`, Domain: DomainConstitutional},

		// Criminal law
		{Expr: `\bcriminal\b`, Domain: DomainCriminal},
		{Expr: `\bcrimes?\b`, Domain: DomainCriminal},
		{Expr: `\bFIR\b`, Domain: DomainCriminal},
		{Expr: `\bIPC\b`, Domain: DomainCriminal},
		{Expr: `\bsection \d+\b`, Domain: DomainCriminal},
		{Expr: `\bmurder\b`, Domain: DomainCriminal},
		{Expr: `\btheft\b`, Domain: DomainCriminal},
		{Expr: `\bbail\b`, Domain: DomainCriminal},
		{Expr: `\barrest(ed)?\b`, Domain: DomainCriminal},
		{Expr: `\bpolice\b`, Domain: DomainCriminal},
		{Expr: `\bassault\b`, Domain: DomainCriminal},
		{Expr: `\bfraud\b`, Domain: DomainCriminal},
		{Expr: `\bcyber ?crime\b`, Domain: DomainCriminal},
		{Expr: `\bdowry\b`, Domain: DomainCriminal},

		// Civil law
		{Expr: `\bdivorce\b`, Domain: DomainCivil},
		{Expr: `\bmarriage\b`, Domain: DomainCivil},
		{Expr: `\bcustody\b`, Domain: DomainCivil},
		{Expr: `\balimony\b`, Domain: DomainCivil},
		{Expr: `\bmaintenance\b`, Domain: DomainCivil},
		{Expr: `\bcontract\b`, Domain: DomainCivil},
		{Expr: `\bconsumer (court|complaint|protection)\b`, Domain: DomainCivil},
		{Expr: `\btenant\b`, Domain: DomainCivil},
		{Expr: `\blandlord\b`, Domain: DomainCivil},
		{Expr: `\binheritance\b`, Domain: DomainCivil},
		{Expr: `\bsuccession\b`, Domain: DomainCivil},
		{Expr: `\badoption\b`, Domain: DomainCivil},
		{Expr: `\blawsuit\b`, Domain: DomainCivil},

		// Property law
		{Expr: `\bproperty\b`, Domain: DomainProperty},
		{Expr: `\bland (dispute|record|registration)\b`, Domain: DomainProperty},
		{Expr: `\bsale deed\b`, Domain: DomainProperty},
		{Expr: `\bstamp duty\b`, Domain: DomainProperty},
		{Expr: `\bencroachment\b`, Domain: DomainProperty},
		{Expr: `\bwill\b`, Domain: DomainProperty},
		{Expr: `\blease\b`, Domain: DomainProperty},
		{Expr: `\brent agreement\b`, Domain: DomainProperty},
		{Expr: `\breal estate\b`, Domain: DomainProperty},
		{Expr: `\bmutation\b`, Domain: DomainProperty},

		// Hindi (transliterated)
		{Expr: `\bkanoon\b`, Domain: DomainConstitutional},
		{Expr: `\bkanun\b`, Domain: DomainConstitutional},
		{Expr: `\bsamvidhan\b`, Domain: DomainConstitutional},
		{Expr: `\badhikar\b`, Domain: DomainConstitutional},
		{Expr: `\baparadh\b`, Domain: DomainCriminal},
		{Expr: `\bjamanat\b`, Domain: DomainCriminal},
		{Expr: `\bgiraftar(i)?\b`, Domain: DomainCriminal},
		{Expr: `\bdhara \d+\b`, Domain: DomainCriminal},
		{Expr: `\btalaq\b`, Domain: DomainCivil},
		{Expr: `\bshaadi\b`, Domain: DomainCivil},
		{Expr: `\bvivah\b`, Domain: DomainCivil},
		{Expr: `\bmukadma\b`, Domain: DomainCivil},
		{Expr: `\badalat\b`, Domain: DomainCivil},
		{Expr: `\bsampatti\b`, Domain: DomainProperty},
		{Expr: `\bzameen\b`, Domain: DomainProperty},
		{Expr: `\bjameen\b`, Domain: DomainProperty},
		{Expr: `\bwasiyat\b`, Domain: DomainProperty},
		{Expr: `\bvarasat\b`, Domain: DomainProperty},
		{Expr: `\bkiraya\b`, Domain: DomainProperty},

		// Marathi (transliterated)
		{Expr: `\bkayda\b`, Domain: DomainConstitutional},
		{Expr: `\bhakk\b`, Domain: DomainConstitutional},
		{Expr: `\bgunha\b`, Domain: DomainCriminal},
		{Expr: `\bkhatla\b`, Domain: DomainCivil},
		{Expr: `\blagna\b`, Domain: DomainCivil},
		{Expr: `\bnyayalay\b`, Domain: DomainCivil},
		{Expr: `\bmalmatta\b`, Domain: DomainProperty},
	}
}
