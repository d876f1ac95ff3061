// Package nif defines the vocabulary of the NLP Interchange Format
// (NIF) 2.1 core ontology, together with the ITS RDF and CoNLL terms
// the exporter emits. URI construction lives here as pure string
// helpers so it stays testable without any RDF machinery.
package nif

// Namespaces
const (
	NIF    = "http://persistence.uni-leipzig.org/nlp2rdf/ontologies/nif-core#"
	ITSRDF = "http://www.w3.org/2005/11/its/rdf#"
	CONLL  = "http://ufal.mff.cuni.cz/conll2009-st/task-description.html#"
	RDF    = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	XSD    = "http://www.w3.org/2001/XMLSchema#"
)

// Classes
const (
	ClassContext          = NIF + "Context"
	ClassSentence         = NIF + "Sentence"
	ClassWord             = NIF + "Word"
	ClassSpan             = NIF + "Span"
	ClassEntityOccurrence = NIF + "EntityOccurrence"
)

// Properties of the nif-core namespace
const (
	PropBeginIndex             = NIF + "beginIndex"
	PropEndIndex               = NIF + "endIndex"
	PropIsString               = NIF + "isString"
	PropAnchorOf               = NIF + "anchorOf"
	PropReferenceContext       = NIF + "referenceContext"
	PropNextWord               = NIF + "nextWord"
	PropNextSentence           = NIF + "nextSentence"
	PropFirstWord              = NIF + "firstWord"
	PropLastWord               = NIF + "lastWord"
	PropSentence               = NIF + "sentence"
	PropLemma                  = NIF + "lemma"
	PropPosTag                 = NIF + "posTag"
	PropDependencyRelationType = NIF + "dependencyRelationType"
	PropLiteralAnnotation      = NIF + "literalAnnotation"
	PropSubString              = NIF + "subString"
)

// Properties of the ITS RDF and CoNLL namespaces
const (
	PropTAClassRef = ITSRDF + "taClassRef"
	PropFeats      = CONLL + "FEATS"
	PropHead       = CONLL + "HEAD"
)

// RDF and XSD terms
const (
	PropType               = RDF + "type"
	TypeNonNegativeInteger = XSD + "nonNegativeInteger"
	TypeString             = XSD + "string"
)
