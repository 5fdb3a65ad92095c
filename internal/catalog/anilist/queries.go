package anilist

// GraphQL documents sent to the anime catalog. Filter variables that are
// unset are omitted from the variables map, not sent as null, so the
// upstream query is never over-constrained; the documents therefore declare
// every filter as optional.

const pageQuery = `
query ($page: Int, $perPage: Int, $sort: [MediaSort], $format: MediaFormat, $status: MediaStatus, $search: String, $genre: String) {
  Page(page: $page, perPage: $perPage) {
    pageInfo {
      total
      perPage
      currentPage
      lastPage
      hasNextPage
    }
    media(type: ANIME, sort: $sort, format: $format, status: $status, search: $search, genre: $genre) {
      id
      title {
        romaji
        english
        native
      }
      coverImage {
        extraLarge
        large
        medium
      }
      episodes
      status
      format
      genres
      averageScore
      popularity
      season
      seasonYear
      studios(isMain: true) {
        nodes {
          name
        }
      }
      nextAiringEpisode {
        episode
        timeUntilAiring
        airingAt
      }
    }
  }
}`

const detailQuery = `
query ($id: Int) {
  Media(id: $id, type: ANIME) {
    id
    title {
      romaji
      english
      native
    }
    description(asHtml: false)
    coverImage {
      extraLarge
      large
      medium
    }
    bannerImage
    episodes
    duration
    status
    format
    genres
    averageScore
    popularity
    season
    seasonYear
    startDate {
      year
      month
      day
    }
    endDate {
      year
      month
      day
    }
    studios {
      edges {
        isMain
        node {
          name
        }
      }
    }
    staff(perPage: 8) {
      edges {
        role
        node {
          name {
            full
          }
        }
      }
    }
    characters(perPage: 12, sort: ROLE) {
      edges {
        role
        node {
          name {
            full
          }
          image {
            medium
          }
        }
      }
    }
    relations {
      edges {
        relationType
        node {
          id
          title {
            romaji
            english
          }
          coverImage {
            large
          }
          format
          type
        }
      }
    }
    recommendations(perPage: 6, sort: RATING_DESC) {
      edges {
        node {
          mediaRecommendation {
            id
            title {
              romaji
              english
            }
            coverImage {
              large
            }
            format
          }
        }
      }
    }
    nextAiringEpisode {
      episode
      timeUntilAiring
      airingAt
    }
  }
}`
