package seed

import "github.com/yigit/roadmap/internal/app/models"

type catalogCourse struct {
	number      string
	title       string
	difficulty  int
	workload    int
	terms       []models.TermCode
	description string
}

var (
	everyTerm  = []models.TermCode{models.TermFall, models.TermWinter, models.TermSpring}
	fallOnly   = []models.TermCode{models.TermFall}
	winterOnly = []models.TermCode{models.TermWinter}
	springOnly = []models.TermCode{models.TermSpring}
	fallSpring = []models.TermCode{models.TermFall, models.TermSpring}
)

const (
	mathDept      = "MATH"
	mathDeptName  = "Mathematics"
	mathMajorName = "Mathematics"
	mathMajorCode = "MA30"
	courseUnits   = 4
)

var mathCatalog = []catalogCourse{
	// Lower division
	{"18", "Linear Algebra", 5, 5, everyTerm, "Matrix algebra, Gaussian elimination, determinants, linear independence, bases, dimension, eigenvalues and eigenvectors, applications."},
	{"20A", "Calculus for Science and Engineering", 4, 4, everyTerm, "Differentiation and integration of functions of one variable, with applications."},
	{"20B", "Calculus for Science and Engineering", 5, 5, everyTerm, "Integral calculus of several variables, vector calculus, applications."},
	{"20C", "Calculus and Analytic Geometry for Science and Engineering", 5, 5, everyTerm, "Vector geometry, vector functions, partial differentiation, multiple integration, change of variables in multiple integrals."},
	{"20D", "Introduction to Differential Equations", 5, 5, everyTerm, "Ordinary differential equations: exact, separable, and linear; constant coefficients, undetermined coefficients, variations of parameters."},
	{"20E", "Vector Calculus", 6, 5, everyTerm, "Calculus of vector functions, line integrals, surface integrals, Green's theorem, Stokes' theorem, divergence theorem."},

	// Upper division
	{"100A", "Abstract Algebra I", 8, 7, fallOnly, "Groups, subgroups, quotient groups, isomorphism theorems, group actions, Sylow theorems."},
	{"100B", "Abstract Algebra II", 8, 7, winterOnly, "Rings, ideals, quotient rings, polynomial rings, unique factorization domains, fields, field extensions."},
	{"100C", "Abstract Algebra III", 8, 7, springOnly, "Modules, vector spaces, canonical forms, tensor products, Galois theory."},
	{"102", "Applied Linear Algebra", 6, 6, fallSpring, "Linear equations, matrices, determinants, eigenvalues, eigenvectors, inner products, linear transformations, applications."},
	{"109", "Mathematical Reasoning", 6, 6, everyTerm, "Introduction to methods of proof including mathematical induction, combinatorial arguments, proof by contradiction, and direct proof."},
	{"140A", "Real Analysis I", 9, 8, fallOnly, "Real numbers, topology of Euclidean spaces, metric spaces, continuity, differentiation."},
	{"140B", "Real Analysis II", 9, 8, winterOnly, "Riemann integration, sequences and series of functions, uniform convergence, Fourier series."},
	{"140C", "Real Analysis III", 9, 8, springOnly, "Lebesgue measure and integration, convergence theorems, differentiation theorems."},
	{"142A", "Introduction to Analysis I", 7, 7, everyTerm, "Sequences, series, continuity, uniform continuity, compactness, completeness."},
	{"142B", "Introduction to Analysis II", 7, 7, fallSpring, "Differentiation, mean value theorem, Taylor's theorem, Riemann integration."},
	{"180A", "Introduction to Probability", 6, 6, everyTerm, "Discrete and continuous random variables, expectation, distributions, limit theorems."},
	{"180B", "Introduction to Statistics", 6, 6, winterOnly, "Sampling distributions, estimation, hypothesis testing, confidence intervals, regression."},
	{"180C", "Introduction to Stochastic Processes", 7, 6, springOnly, "Markov chains, random walks, Poisson processes, queuing theory, applications."},
	{"181A", "Introduction to Mathematical Statistics I", 7, 6, fallOnly, "Probability theory, random variables, moment generating functions, sampling distributions."},
	{"181B", "Introduction to Mathematical Statistics II", 7, 6, winterOnly, "Point estimation, interval estimation, hypothesis testing, regression analysis."},
	{"181C", "Introduction to Mathematical Statistics III", 7, 6, springOnly, "Analysis of variance, nonparametric methods, sequential analysis."},
	{"184", "Enumerative Combinatorics", 6, 5, fallSpring, "Permutations, combinations, generating functions, recurrence relations, inclusion-exclusion."},
	{"185", "Graph Theory", 6, 5, winterOnly, "Graphs, trees, connectivity, Eulerian and Hamiltonian graphs, planarity, coloring."},
	{"186", "Probability Theory", 8, 7, springOnly, "Measure-theoretic probability, random variables, independence, laws of large numbers, central limit theorem."},
	{"187A", "Introduction to Cryptography", 6, 6, winterOnly, "Number theory, modular arithmetic, RSA, Diffie-Hellman, elliptic curves, digital signatures."},
	{"190", "Number Theory", 6, 5, fallOnly, "Divisibility, prime numbers, congruences, quadratic reciprocity, arithmetic functions."},
	{"194", "Ordinary Differential Equations", 7, 6, fallSpring, "Existence and uniqueness theorems, linear systems, stability, phase portraits, boundary value problems."},
	{"195", "Teaching Mathematics", 3, 5, everyTerm, "Mathematics teaching methods, curriculum development, classroom practice."},
	{"196", "History of Mathematics", 3, 4, springOnly, "Development of mathematical ideas from ancient to modern times."},
}

// mathPrereqs lists course number, prerequisite number pairs within MATH.
var mathPrereqs = [][2]string{
	{"20B", "20A"}, {"20C", "20B"}, {"20D", "20C"}, {"20E", "20C"}, {"20E", "20D"},

	{"100A", "18"}, {"100A", "20C"}, {"100A", "109"},
	{"100B", "100A"}, {"100C", "100B"},
	{"102", "18"}, {"102", "20C"},
	{"140A", "20C"}, {"140A", "109"},
	{"140B", "140A"}, {"140C", "140B"},
	{"142A", "20C"}, {"142A", "109"},
	{"142B", "142A"},
	{"180A", "20C"}, {"180A", "18"},
	{"180B", "180A"}, {"180C", "180B"},
	{"181A", "180A"}, {"181A", "142A"},
	{"181B", "181A"}, {"181C", "181B"},
	{"184", "109"}, {"185", "109"},
	{"186", "180A"}, {"186", "140A"},
	{"187A", "109"}, {"190", "109"},
	{"194", "20D"}, {"194", "18"}, {"194", "109"},
	{"195", "100A"}, {"196", "100A"},
}

type requirementGroup struct {
	name     string
	required bool
	numbers  []string
}

var mathRequirements = []requirementGroup{
	{"Lower Division", true, []string{"18", "20A", "20B", "20C", "20D", "20E"}},
	{"Upper Division Core", true, []string{"100A", "109", "140A", "142A", "180A"}},
	{"Upper Division Electives", false, []string{
		"100B", "100C", "102", "140B", "140C", "142B", "180B", "180C", "181A", "181B",
		"181C", "184", "185", "186", "187A", "190", "194", "195", "196",
	}},
}
