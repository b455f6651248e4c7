package searcher

// Hyperparameters for tree search

// ParallelThreshold is the depth a search must exceed before root moves are fanned out to workers.
const ParallelThreshold = 3
