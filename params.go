package scratchmlp

// Default hyperparameters, shared by the training driver and the binaries.

// learning rate
var DefaultLearningRate = 0.5

// momentum
var DefaultMomentum = 0.0

// number of epochs
var DefaultEpochs = 30

// epochs between loss reports
var DefaultReportEvery = 10

// seed for the injected random source
var DefaultSeed int64 = 42
